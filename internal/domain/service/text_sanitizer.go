package service

// TextSanitizer reduces user-supplied catalog text (store names, product
// names and descriptions, tag labels) to plain text.
type TextSanitizer interface {
	PlainText(s string) string
}
