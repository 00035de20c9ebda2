package types

// TranslateRequest - admin side content translation request
type TranslateRequest struct {
	Text           string `json:"text" binding:"required,min=1"`
	SourceLanguage string `json:"sourceLanguage" binding:"required,oneof=tr en"`
	TargetLanguage string `json:"targetLanguage" binding:"required,oneof=tr en"`
}

// TranslateResponse - translated content
type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}
