package ui

// CommittedMsg is sent after the user submits a valid bill (Enter on the bill field).
// Bill is the trimmed text as entered.
type CommittedMsg struct {
	Bill string
}
