package webutil

import (
	"context"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"go_5_lesson_notes/internal/catalog"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

func init() {
	Validator = validator.New()

	// formタグからフィールド名を取得する (select_lesson など)
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// lesson タグ: カタログに存在するレッスン名のみ許可 (章名は不可)
	if err := Validator.RegisterValidationCtx("lesson", func(ctx context.Context, fl validator.FieldLevel) bool {
		return catalogFromContext(ctx).IsValidLesson(fl.Field().String())
	}); err != nil {
		log.Fatal(err)
	}

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	Validator.RegisterTranslation("lesson", Trans, func(ut ut.Translator) error {
		return ut.Add("lesson", "{0} must be a lesson from the catalog, not a chapter name", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("lesson", fe.Field())
		return t
	})
}

type catalogCtxKey struct{}

// WithCatalog は lesson タグの検証に使うカタログをコンテキストに格納します
func WithCatalog(ctx context.Context, cat *catalog.Catalog) context.Context {
	return context.WithValue(ctx, catalogCtxKey{}, cat)
}

func catalogFromContext(ctx context.Context) *catalog.Catalog {
	if cat, ok := ctx.Value(catalogCtxKey{}).(*catalog.Catalog); ok && cat != nil {
		return cat
	}
	return catalog.Default()
}

// FirstValidationMessage はバリデーションエラーの最初の1件を翻訳して返します
func FirstValidationMessage(errs validator.ValidationErrors) (field, message string) {
	if len(errs) == 0 {
		return "", ""
	}
	return errs[0].Field(), errs[0].Translate(Trans)
}
