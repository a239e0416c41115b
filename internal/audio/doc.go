// Package audio reads and writes audio file tags.
//
// Tags are exchanged as flat label/value sets (see model.TagSet) and mapped
// to ID3v2.4 frames for MP3 files:
//
//	tagger := audio.NewTagger()
//
//	tags, err := tagger.Read("/podcasts/show/Pilot.mp3")
//	id := tags[model.IDTagLabel] // custom labels live in TXXX frames
//
//	err = tagger.Write(path, episode.TagSet(), audio.ModeReplace)
//
// Two write modes exist. ModeReplace drops every existing frame before
// writing, ModeMerge only touches the labels present in the new set.
//
// Other formats (WAV, FLAC, Ogg, M4A) are read and written through TagLib,
// using the same labels. Files that no tag library recognizes fail with
// ErrUnsupportedFormat.
package audio
