package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Error carries every violation found in one request body.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, ", ")
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type GenerateRequest struct {
	Prompt        string  `json:"prompt" validate:"required,min=10,max=2000"`
	Publish       bool    `json:"publish"`
	FeaturedImage *string `json:"featured_image" validate:"omitempty,url"`
}

type ArticleRequest struct {
	Title         string   `json:"title" validate:"required,min=5,max=200"`
	Slug          string   `json:"slug" validate:"required,slug"`
	Summary       *string  `json:"summary" validate:"omitempty,max=500"`
	Content       string   `json:"content" validate:"required,min=20"`
	Tags          []string `json:"tags"`
	Language      string   `json:"language" validate:"oneof=en ne"`
	FeaturedImage *string  `json:"featured_image" validate:"omitempty,url"`
}

type PublishRequest struct {
	ID      string `json:"id" validate:"required"`
	Publish *bool  `json:"publish" validate:"required"`
}

type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// report json names so messages match the request body
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	_ = validate.RegisterTranslation("slug", trans,
		func(ut ut.Translator) error {
			return ut.Add("slug", "{0} may only contain lowercase letters, numbers and hyphens", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("slug", fe.Field())
			return t
		},
	)

	return &Validator{validate: validate, trans: trans}
}

func (v *Validator) ValidateLogin(req *LoginRequest) error {
	req.Email = strings.TrimSpace(req.Email)
	return v.check(req)
}

func (v *Validator) ValidateGenerate(req *GenerateRequest) error {
	req.FeaturedImage = blankToNil(req.FeaturedImage)
	return v.check(req)
}

// ValidateArticle applies the tags and language defaults before checking.
func (v *Validator) ValidateArticle(req *ArticleRequest) error {
	if req.Tags == nil {
		req.Tags = []string{}
	}
	if req.Language == "" {
		req.Language = "en"
	}
	req.FeaturedImage = blankToNil(req.FeaturedImage)
	return v.check(req)
}

func (v *Validator) ValidatePublish(req *PublishRequest) error {
	return v.check(req)
}

func (v *Validator) check(req any) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &Error{Messages: []string{err.Error()}}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Translate(v.trans))
	}
	return &Error{Messages: messages}
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
