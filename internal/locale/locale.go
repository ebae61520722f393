// Package locale renders user-facing messages in English or Turkish.
//
// The language is always an explicit value: the HTTP layer negotiates it per
// request and the CLI takes it from configuration.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type Language string

const (
	English Language = "en"
	Turkish Language = "tr"
)

// ContextKey is the gin context key under which the request language is stored.
const ContextKey = "lang"

var matcher = language.NewMatcher([]language.Tag{language.Turkish, language.English})

// Parse turns a language code such as "en" or "tr-TR" into a Language.
func Parse(code string, fallback Language) Language {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return fallback
	}
	return fromTag(tag, fallback)
}

// Negotiate picks the best supported language for an Accept-Language header.
func Negotiate(acceptLanguage string, fallback Language) Language {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	tag, _, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return fromTag(tag, fallback)
}

func fromTag(tag language.Tag, fallback Language) Language {
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return English
	case "tr":
		return Turkish
	}
	return fallback
}

type Key string

const (
	EventCreated       Key = "event_created"
	EventUpdated       Key = "event_updated"
	EventDeleted       Key = "event_deleted"
	EventNotFound      Key = "event_not_found"
	RequiredFields     Key = "required_fields"
	ValidationFailed   Key = "validation_failed"
	InvalidCredentials Key = "invalid_credentials"
	EmailInUse         Key = "email_in_use"
	InvalidUserData    Key = "invalid_user_data"
	InvalidRequest     Key = "invalid_request"
	InternalError      Key = "internal_error"
)

var catalog = map[Key]map[Language]string{
	EventCreated: {
		English: "Event created successfully",
		Turkish: "Etkinlik başarıyla oluşturuldu",
	},
	EventUpdated: {
		English: "Event updated successfully",
		Turkish: "Etkinlik başarıyla güncellendi",
	},
	EventDeleted: {
		English: "Event deleted successfully",
		Turkish: "Etkinlik başarıyla silindi",
	},
	EventNotFound: {
		English: "Event not found",
		Turkish: "Etkinlik bulunamadı",
	},
	RequiredFields: {
		English: "Please fill in all required fields",
		Turkish: "Lütfen tüm zorunlu alanları doldurun",
	},
	ValidationFailed: {
		English: "Validation error",
		Turkish: "Validasyon hatası",
	},
	InvalidCredentials: {
		English: "Invalid email or password",
		Turkish: "Geçersiz email veya şifre",
	},
	EmailInUse: {
		English: "This email is already in use",
		Turkish: "Bu email zaten kullanılıyor",
	},
	InvalidUserData: {
		English: "Invalid user data",
		Turkish: "Geçersiz kullanıcı bilgileri",
	},
	InvalidRequest: {
		English: "Invalid request payload",
		Turkish: "Geçersiz istek gövdesi",
	},
	InternalError: {
		English: "Something went wrong, please try again later",
		Turkish: "Bir hata oluştu, lütfen daha sonra tekrar deneyin",
	},
}

// Message returns the text for key in lang, falling back to Turkish.
func Message(lang Language, key Key) string {
	texts, ok := catalog[key]
	if !ok {
		return string(key)
	}
	if text, ok := texts[lang]; ok {
		return text
	}
	return texts[Turkish]
}

var fieldNames = map[string]map[Language]string{
	"title":       {English: "title", Turkish: "Başlık"},
	"community":   {English: "community", Turkish: "Topluluk"},
	"description": {English: "description", Turkish: "Açıklama"},
	"date":        {English: "date", Turkish: "Tarih"},
	"imageUrl":    {English: "imageUrl", Turkish: "Görsel bağlantısı"},
	"createdBy":   {English: "createdBy", Turkish: "Oluşturan"},
	"email":       {English: "email", Turkish: "E-posta"},
	"password":    {English: "password", Turkish: "Şifre"},
}

func fieldName(lang Language, field string) string {
	if names, ok := fieldNames[field]; ok {
		if name, ok := names[lang]; ok {
			return name
		}
	}
	return field
}

// FieldError renders a single failed validation rule for field.
func FieldError(lang Language, field, rule, param string) string {
	name := fieldName(lang, field)
	if lang == English {
		switch rule {
		case "required":
			return fmt.Sprintf("%s is required", name)
		case "max":
			return fmt.Sprintf("%s must be at most %s characters", name, param)
		case "min":
			return fmt.Sprintf("%s must be at least %s characters", name, param)
		case "url":
			return fmt.Sprintf("%s must be a valid URL", name)
		case "email":
			return fmt.Sprintf("%s must be a valid email address", name)
		case "datetime":
			return fmt.Sprintf("%s must be a valid date", name)
		}
		return fmt.Sprintf("%s is invalid", name)
	}

	switch rule {
	case "required":
		return fmt.Sprintf("%s alanı zorunludur", name)
	case "max":
		return fmt.Sprintf("%s en fazla %s karakter olabilir", name, param)
	case "min":
		return fmt.Sprintf("%s en az %s karakter olmalıdır", name, param)
	case "url":
		return fmt.Sprintf("%s geçerli bir URL olmalıdır", name)
	case "email":
		return fmt.Sprintf("%s geçerli bir e-posta adresi olmalıdır", name)
	case "datetime":
		return fmt.Sprintf("%s geçerli bir tarih olmalıdır", name)
	}
	return fmt.Sprintf("%s geçersiz", name)
}
