// Package naming derives track metadata from audio file names.
//
// Two filename shapes are recognized:
//
//	Track 7.mp3            // track number only
//	07 - Some Title.mp3    // track number and title ("07. Some Title.mp3" also works)
//
// Only ".mp3" and ".wav" files are matched. Anything else falls back to
// "no track number" and a title equal to the name without its extension:
//
//	n, ok := naming.ParseTrackNumber("03 - Intro.mp3") // 3, true
//	title := naming.ParseTitle("03 - Intro.mp3")       // "Intro"
package naming
