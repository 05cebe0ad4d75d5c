package scene

// Label is a text display drawn next to its owner
type Label struct {
	text string
}

func NewLabel(text string) *Label {
	return &Label{text: text}
}

func (l *Label) SetText(text string) {
	l.text = text
}

func (l *Label) Text() string {
	return l.text
}
