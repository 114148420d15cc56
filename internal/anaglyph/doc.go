// Package anaglyph decodes red/cyan anaglyph frames into side-by-side
// greyscale stereo frames.
//
// [Select] maps a resolution selector such as "1080p" to a [Resolution].
// [Transform] is the hot path used by the converter: it decodes a raw
// interleaved RGB buffer straight into a raw side-by-side output buffer.
// [Left], [Right] and [SideBySide] perform the same decoding on
// [github.com/zsiec/deanaglyph/internal/media] frames.
package anaglyph
