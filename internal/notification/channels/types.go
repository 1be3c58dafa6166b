package channels

// RenderedTemplate là nội dung email đã được render
type RenderedTemplate struct {
	Subject string
	Content string
	CTAs    []RenderedCTA
}

// RenderedCTA là nút hành động trong email
type RenderedCTA struct {
	Label  string
	Action string // URL đích của nút
}
