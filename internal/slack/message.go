package slack

// Block Kit payload for an incoming webhook. Only the block kinds the
// notifier emits are modeled: header, plain/mrkdwn sections and field
// pair sections.

const (
	BlockTypeHeader  = "header"
	BlockTypeSection = "section"

	TextTypePlain    = "plain_text"
	TextTypeMarkdown = "mrkdwn"
)

type Message struct {
	Text   string  `json:"text"`
	Blocks []Block `json:"blocks"`
}

type Block struct {
	Type   string       `json:"type"`
	Text   *TextObject  `json:"text,omitempty"`
	Fields []TextObject `json:"fields,omitempty"`
}

type TextObject struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

// Header builds a header block with a plain-text title.
func Header(title string) Block {
	return Block{
		Type: BlockTypeHeader,
		Text: &TextObject{Type: TextTypePlain, Text: title, Emoji: true},
	}
}

// Section builds a section block with mrkdwn body text.
func Section(text string) Block {
	return Block{
		Type: BlockTypeSection,
		Text: &TextObject{Type: TextTypeMarkdown, Text: text},
	}
}

// Fields builds a section block with plain-text field pairs.
func Fields(texts ...string) Block {
	fields := make([]TextObject, 0, len(texts))
	for _, t := range texts {
		fields = append(fields, TextObject{Type: TextTypePlain, Text: t})
	}
	return Block{Type: BlockTypeSection, Fields: fields}
}
