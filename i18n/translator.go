package i18n

// Translator retrieves localized messages for node.Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "property").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "resolution_error":
			return "参照を解決できませんでした"
		case "invalid_type":
			return "型が不正です"
		case "decode_error":
			return "デコードに失敗しました"
		case "duplicate_key":
			return "キーが重複しています"
		case "required":
			return "必須プロパティが不足しています"
		case "dependency_missing":
			return "依存先のプロパティがありません"
		case "unknown_key":
			return "未知のキーです"
		case "too_small":
			return "値が小さすぎます"
		case "too_big":
			return "値が大きすぎます"
		case "too_short":
			return "短すぎます"
		case "too_long":
			return "長すぎます"
		case "pattern":
			return "パターンに一致しません"
		case "invalid_enum":
			return "許可された値のいずれとも一致しません"
		case "not_multiple_of":
			return "指定された数の倍数ではありません"
		case "not_unique":
			return "要素が重複しています"
		case "not_integral":
			return "整数ではありません"
		case "combinator_violation":
			return "スキーマの組み合わせ条件を満たしません"
		case "parse_error":
			return "解析エラー"
		case "truncated":
			return "打ち切られました"
		}
	default: // "en"
		switch code {
		case "resolution_error":
			return "reference could not be resolved"
		case "invalid_type":
			return "invalid type"
		case "decode_error":
			return "decode failed"
		case "duplicate_key":
			return "duplicate key"
		case "required":
			return "required property missing"
		case "dependency_missing":
			return "required dependency missing"
		case "unknown_key":
			return "unknown key"
		case "too_small":
			return "value too small"
		case "too_big":
			return "value too big"
		case "too_short":
			return "too short"
		case "too_long":
			return "too long"
		case "pattern":
			return "does not match pattern"
		case "invalid_enum":
			return "not one of the allowed values"
		case "not_multiple_of":
			return "not a multiple of the required step"
		case "not_unique":
			return "elements must be unique"
		case "not_integral":
			return "not an integer"
		case "combinator_violation":
			return "does not satisfy the schema combinator"
		case "parse_error":
			return "parse error"
		case "truncated":
			return "truncated"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
