package discord

import (
	"fmt"
	"unicode/utf8"

	"github.com/striker-satyam/gatewaychk/internal/common/errorwrapper"
)

// Discord API limits, counted in characters.
const (
	MaxContentLength     = 2000
	MaxTitleLength       = 256
	MaxDescriptionLength = 4096
	MaxFields            = 25
	MaxFieldNameLength   = 256
	MaxFieldValueLength  = 1024
	MaxFooterTextLength  = 2048
	MaxAuthorNameLength  = 256
	MaxEmbeds            = 10
)

// Validator checks payloads against the Discord API limits.
type Validator struct{}

// NewValidator creates a new payload validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePayload checks the content, the embed count and every embed.
func (v *Validator) ValidatePayload(payload MessagePayload) error {
	if payload.Content == "" && len(payload.Embeds) == 0 {
		return errorwrapper.NewValidationError("payload", "", "payload needs content or at least one embed")
	}
	if utf8.RuneCountInString(payload.Content) > MaxContentLength {
		return errorwrapper.NewValidationError("content", payload.Content, fmt.Sprintf("content cannot exceed %d characters", MaxContentLength))
	}
	if len(payload.Embeds) > MaxEmbeds {
		return errorwrapper.NewValidationError("embeds", len(payload.Embeds), fmt.Sprintf("cannot have more than %d embeds", MaxEmbeds))
	}
	for _, embed := range payload.Embeds {
		if err := v.ValidateEmbed(embed); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEmbed validates a Discord embed
func (v *Validator) ValidateEmbed(embed Embed) error {
	if utf8.RuneCountInString(embed.Title) > MaxTitleLength {
		return errorwrapper.NewValidationError("title", embed.Title, "title cannot exceed 256 characters")
	}
	if utf8.RuneCountInString(embed.Description) > MaxDescriptionLength {
		return errorwrapper.NewValidationError("description", embed.Description, "description cannot exceed 4096 characters")
	}
	if len(embed.Fields) > MaxFields {
		return errorwrapper.NewValidationError("fields", len(embed.Fields), "cannot have more than 25 fields")
	}

	for i, field := range embed.Fields {
		if field.Name == "" {
			return errorwrapper.NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot be empty", i))
		}
		if field.Value == "" {
			return errorwrapper.NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot be empty", i))
		}
		if utf8.RuneCountInString(field.Name) > MaxFieldNameLength {
			return errorwrapper.NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot exceed 256 characters", i))
		}
		if utf8.RuneCountInString(field.Value) > MaxFieldValueLength {
			return errorwrapper.NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot exceed 1024 characters", i))
		}
	}

	if embed.Footer != nil && utf8.RuneCountInString(embed.Footer.Text) > MaxFooterTextLength {
		return errorwrapper.NewValidationError("footer_text", embed.Footer.Text, "footer text cannot exceed 2048 characters")
	}
	if embed.Author != nil && utf8.RuneCountInString(embed.Author.Name) > MaxAuthorNameLength {
		return errorwrapper.NewValidationError("author_name", embed.Author.Name, "author name cannot exceed 256 characters")
	}

	return nil
}
