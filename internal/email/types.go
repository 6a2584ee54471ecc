package email

// Email представляет структуру email сообщения
type Email struct {
	To       []string
	Subject  string
	Body     string // text/plain
	HTMLBody string // text/html, имеет приоритет как основная часть
}

// TemplateData представляет данные для шаблонов писем
type TemplateData map[string]interface{}
