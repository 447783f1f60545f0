package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 认证相关错误。
var (
	Unauthenticated = Definition{Code: "UNAUTHENTICATED", Message: "You must be logged in to use this feature"}
)

// 行程生成模块错误。
var (
	PromptTooShort = Definition{Code: "INVALID_PROMPT", Message: "Please provide a valid prompt (at least 5 characters)."}
)

// 预订搜索模块错误。
var (
	SearchFieldsMissing = Definition{Code: "INVALID_SEARCH", Message: "Both type and query are required for booking search."}
	BookingTypeInvalid  = Definition{Code: "INVALID_BOOKING_TYPE", Message: "Invalid booking type. Supported types: flight, hotel, bus"}
)

// 翻译服务错误。失败不会直接透传给对话前端，只用于日志与指标。
var (
	TranslationFailed            = Definition{Code: "TRANSLATION_FAILED", Message: "Translation service call failed"}
	UnsupportedTranslateProvider = Definition{Code: "UNSUPPORTED_TRANSLATE_PROVIDER", Message: "Unsupported translate provider"}
)

// 基础设施错误。
var (
	TokenGeneratorNotInitialized = Definition{Code: "TOKEN_GENERATOR_NOT_INITIALIZED", Message: "Token generator not initialized"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	Unauthenticated.Code:              Unauthenticated,
	PromptTooShort.Code:               PromptTooShort,
	SearchFieldsMissing.Code:          SearchFieldsMissing,
	BookingTypeInvalid.Code:           BookingTypeInvalid,
	TranslationFailed.Code:            TranslationFailed,
	UnsupportedTranslateProvider.Code: UnsupportedTranslateProvider,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
