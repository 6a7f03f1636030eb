package discord

// MessagePayloadBuilder helps in constructing MessagePayload objects.
type MessagePayloadBuilder struct {
	payload   MessagePayload
	validator *Validator
}

// NewMessagePayloadBuilder creates a new instance of MessagePayloadBuilder.
func NewMessagePayloadBuilder() *MessagePayloadBuilder {
	return &MessagePayloadBuilder{
		payload:   MessagePayload{},
		validator: NewValidator(),
	}
}

// WithContent sets the plain text content.
func (b *MessagePayloadBuilder) WithContent(content string) *MessagePayloadBuilder {
	b.payload.Content = content
	return b
}

// WithUsername overrides the webhook's default username.
func (b *MessagePayloadBuilder) WithUsername(username string) *MessagePayloadBuilder {
	b.payload.Username = username
	return b
}

// WithAvatarURL overrides the webhook's default avatar.
func (b *MessagePayloadBuilder) WithAvatarURL(avatarURL string) *MessagePayloadBuilder {
	b.payload.AvatarURL = avatarURL
	return b
}

// AddEmbed appends an embed.
func (b *MessagePayloadBuilder) AddEmbed(embed Embed) *MessagePayloadBuilder {
	b.payload.Embeds = append(b.payload.Embeds, embed)
	return b
}

// Build validates and returns the payload.
func (b *MessagePayloadBuilder) Build() (MessagePayload, error) {
	if err := b.validator.ValidatePayload(b.payload); err != nil {
		return MessagePayload{}, err
	}
	return b.payload, nil
}
