package model

// Marker classifies an advisory line.
type Marker int

const (
	// MarkWarn flags a missing foundation (repo or manifest).
	MarkWarn Marker = iota
	// MarkInstall means something will be created, installed or scaffolded.
	MarkInstall
	// MarkMerge means something exists but will be completed or merged.
	MarkMerge
	// MarkSkip means nothing needs to be done.
	MarkSkip
)

// String returns the marker name.
func (m Marker) String() string {
	switch m {
	case MarkWarn:
		return "warn"
	case MarkInstall:
		return "install"
	case MarkMerge:
		return "merge"
	case MarkSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Glyph returns the prefix printed in front of the advice text, spacing included.
func (m Marker) Glyph() string {
	switch m {
	case MarkWarn:
		return "⚠  "
	case MarkInstall:
		return "📦 "
	case MarkMerge:
		return "🔀 "
	case MarkSkip:
		return "⏭  "
	default:
		return ""
	}
}

// Advice is one human-readable recommendation derived from a State.
type Advice struct {
	Category string // catalog key the advice belongs to
	Mark     Marker
	Text     string
	Gap      bool // render a blank line before this advice
}

// String renders the advice as printed in the summary block.
func (a Advice) String() string {
	return a.Mark.Glyph() + a.Text
}
