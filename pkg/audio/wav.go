package audio

import (
	"encoding/base64"
	"encoding/binary"
)

// Fixed output format of the speech model: raw 16-bit mono PCM at 24kHz.
const (
	DefaultChannels      = 1
	DefaultSampleRate    = 24000
	DefaultBitsPerSample = 16
)

const headerSize = 44

// EncodeWAV wraps raw linear PCM bytes in a RIFF/WAV container. The PCM
// payload is copied verbatim; no resampling or alignment validation is
// performed beyond what the header fields require.
func EncodeWAV(pcm []byte, channels, sampleRate, bitsPerSample int) []byte {
	dataSize := len(pcm)
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	buf := make([]byte, headerSize, headerSize+dataSize)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16) // fmt chunk size
	binary.LittleEndian.PutUint16(buf[20:22], 1)  // PCM
	binary.LittleEndian.PutUint16(buf[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], uint16(bitsPerSample))

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))

	return append(buf, pcm...)
}

// EncodeWAVBase64 encodes the WAV container as base64 text.
func EncodeWAVBase64(pcm []byte, channels, sampleRate, bitsPerSample int) string {
	return base64.StdEncoding.EncodeToString(EncodeWAV(pcm, channels, sampleRate, bitsPerSample))
}

// WAVDataURI returns a playable data URI for a WAV byte sequence.
func WAVDataURI(wav []byte) string {
	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(wav)
}
