package discord

import (
	"time"
)

// EmbedBuilder helps in constructing Embed objects.
type EmbedBuilder struct {
	embed     Embed
	validator *Validator
}

// NewEmbedBuilder creates a new Discord embed builder
func NewEmbedBuilder() *EmbedBuilder {
	return &EmbedBuilder{
		embed:     Embed{},
		validator: NewValidator(),
	}
}

// WithTitle sets the embed title
func (eb *EmbedBuilder) WithTitle(title string) *EmbedBuilder {
	eb.embed.Title = title
	return eb
}

// WithDescription sets the embed description
func (eb *EmbedBuilder) WithDescription(description string) *EmbedBuilder {
	eb.embed.Description = description
	return eb
}

// WithURL makes the title a link
func (eb *EmbedBuilder) WithURL(url string) *EmbedBuilder {
	eb.embed.URL = url
	return eb
}

// WithTimestamp sets the embed timestamp
func (eb *EmbedBuilder) WithTimestamp(timestamp time.Time) *EmbedBuilder {
	eb.embed.Timestamp = timestamp.Format(time.RFC3339)
	return eb
}

// WithColor sets the embed color
func (eb *EmbedBuilder) WithColor(color int) *EmbedBuilder {
	eb.embed.Color = color
	return eb
}

// WithFooter sets the embed footer
func (eb *EmbedBuilder) WithFooter(text, iconURL string) *EmbedBuilder {
	eb.embed.Footer = &EmbedFooter{Text: text, IconURL: iconURL}
	return eb
}

// WithAuthor sets the embed author
func (eb *EmbedBuilder) WithAuthor(name, url, iconURL string) *EmbedBuilder {
	eb.embed.Author = &EmbedAuthor{Name: name, URL: url, IconURL: iconURL}
	return eb
}

// AddField adds a field to the embed
func (eb *EmbedBuilder) AddField(name, value string, inline bool) *EmbedBuilder {
	eb.embed.Fields = append(eb.embed.Fields, EmbedField{Name: name, Value: value, Inline: inline})
	return eb
}

// Build validates and returns the embed.
func (eb *EmbedBuilder) Build() (Embed, error) {
	if err := eb.validator.ValidateEmbed(eb.embed); err != nil {
		return Embed{}, err
	}
	return eb.embed, nil
}
