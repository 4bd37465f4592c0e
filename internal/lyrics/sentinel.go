package lyrics

// sentinel texts stand in for lyrics when resolution fails. they are shown
// as ordinary one-line lyric sets and must never be written back to tags.
const (
	SentinelNoInternet  = "No internet connection."
	SentinelNotFound    = "Lyrics not found."
	SentinelOfflineMode = "No lyrics tag. Running in offline mode."
)

var sentinels = map[string]bool{
	SentinelNoInternet:  true,
	SentinelNotFound:    true,
	SentinelOfflineMode: true,
}

// IsSentinel reports whether text is a failure placeholder rather than
// real lyrics.
func IsSentinel(text string) bool {
	return sentinels[text]
}
