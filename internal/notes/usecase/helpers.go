package usecase

// stringField reads a string value out of an opaque record.
func stringField(record map[string]interface{}, key string) string {
	s, _ := record[key].(string)
	return s
}

// firstPlainText extracts the plain_text of the first span in a rich-text
// list. ok reports whether the list had at least one span.
func firstPlainText(value interface{}) (string, bool) {
	spans, ok := value.([]interface{})
	if !ok || len(spans) == 0 {
		return "", false
	}
	span, ok := spans[0].(map[string]interface{})
	if !ok {
		return "", false
	}
	text, _ := span["plain_text"].(string)
	return text, true
}
