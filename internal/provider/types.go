package provider

type FinishReason string

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content []ContentPart
}

type ContentPart interface {
	isContentPart()
}

type TextPart struct{ Text string }

func (TextPart) isContentPart() {}

// Text concatenates the message's text parts in order.
func (m Message) Text() string {
	var b []byte
	for _, p := range m.Content {
		if t, ok := p.(TextPart); ok {
			b = append(b, t.Text...)
		}
	}
	return string(b)
}
