// Package catalog holds the static tool catalog shown to teachers and
// the mapping from raw tool identifiers to content handlers.
package catalog

// Kind identifies a content handler. Several raw tool IDs share one
// handler; the aliases table below is the single source of that mapping.
type Kind string

const (
	KindLesson        Kind = "lesson"
	KindActivity      Kind = "activity"
	KindFlashcard     Kind = "flashcard"
	KindStory         Kind = "story"
	KindSong          Kind = "song"
	KindSummary       Kind = "summary"
	KindCommunication Kind = "communication"
	KindParent        Kind = "parent"
	KindSupport       Kind = "support"
)

// aliases maps every accepted tool identifier to its canonical handler.
// Many-to-one on purpose: planning tools all produce lesson plans,
// classroom tools all produce activity ideas, and note tools all
// produce day summaries.
var aliases = map[string]Kind{
	"lesson":     KindLesson,
	"objectives": KindLesson,
	"unit":       KindLesson,

	"activity":  KindActivity,
	"roleplay":  KindActivity,
	"questions": KindActivity,

	"flashcard": KindFlashcard,
	"story":     KindStory,
	"song":      KindSong,

	"summary":     KindSummary,
	"observation": KindSummary,

	"communication": KindCommunication,
	"parent":        KindParent,
	"support":       KindSupport,
}

// Resolve returns the handler kind for a raw tool identifier.
func Resolve(toolID string) (Kind, bool) {
	k, ok := aliases[toolID]
	return k, ok
}

// Tool is one entry of the catalog grid.
type Tool struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Desc        string `json:"desc"`
	Placeholder string `json:"placeholder"`
}

// Group is a themed section of the catalog.
type Group struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Tools []Tool `json:"tools"`
}

var groups = []Group{
	{
		Name:  "🗓️ التخطيط",
		Color: "blue",
		Tools: []Tool{
			{ID: "lesson", Icon: "📝", Name: "التخطيط", Desc: "خطط للدروس، الوحدات، والأهداف.", Placeholder: "مثال: وحدة دراسية عن الفضاء والكواكب"},
		},
	},
	{
		Name:  "🎭 أنشطة الفصل",
		Color: "green",
		Tools: []Tool{
			{ID: "activity", Icon: "🤸", Name: "أنشطة الفصل", Desc: "أنشطة، لعب أدوار، وأسئلة.", Placeholder: "مثال: أنشطة فنية عن فصل الخريف"},
		},
	},
	{
		Name:  "📝 بطاقات تعليمية",
		Color: "yellow",
		Tools: []Tool{
			{ID: "flashcard", Icon: "🗂️", Name: "بطاقات تعليمية", Desc: "أنشئ بطاقات لكلمات ومفاهيم.", Placeholder: "مثال: بطاقات عن حيوانات المزرعة"},
		},
	},
	{
		Name:  "📖 موارد تعليمية",
		Color: "purple",
		Tools: []Tool{
			{ID: "story", Icon: "📚", Name: "قصة", Desc: "مواد قصص.", Placeholder: "مثال: قصة عن صداقة بين قطة وفأر"},
			{ID: "song", Icon: "🎵", Name: "أنشودة", Desc: "مواد أناشيد.", Placeholder: "مثال: أنشودة عن الألوان"},
		},
	},
	{
		Name:  "📋 ملخص اليوم والملاحظات",
		Color: "blue",
		Tools: []Tool{
			{ID: "summary", Icon: "📑", Name: "ملخص اليوم والملاحظات", Desc: "لخص اليوم ودون الملاحظات.", Placeholder: "مثال: \"اليوم تعلمنا عن حرف الباء، ولعبنا في الخارج...\""},
		},
	},
	{
		Name:  "📩 رسائل للأهل",
		Color: "green",
		Tools: []Tool{
			{ID: "communication", Icon: "📧", Name: "رسائل للأهل", Desc: "تواصل بفعالية مع أولياء الأمور.", Placeholder: "مثال: إبلاغ الأهل بالرحلة القادمة إلى الحديقة"},
		},
	},
	{
		Name:  "🏡 أنشطة منزلية",
		Color: "yellow",
		Tools: []Tool{
			{ID: "parent", Icon: "🏠", Name: "أنشطة منزلية", Desc: "عزز التعلم في المنزل.", Placeholder: "مثال: أنشطة منزلية لتعزيز مفهوم الألوان"},
		},
	},
	{
		Name:  "🆘 خطة دعم",
		Color: "purple",
		Tools: []Tool{
			{ID: "support", Icon: "❤️", Name: "خطة دعم", Desc: "ضع خطة دعم فردية.", Placeholder: "مثال: طالب يواجه صعوبة في التعرف على الحروف"},
		},
	},
}

// Groups returns the catalog as shown in the tool grid.
func Groups() []Group {
	return groups
}
