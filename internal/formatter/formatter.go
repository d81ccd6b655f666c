// package formatter provides functions to export the address book to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/desertthunder/rolo/internal/book"
)

// ExportToCSV converts the book to CSV format with columns: Name, Birthday, Phones
func ExportToCSV(b *book.AddressBook) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Name", "Birthday", "Phones"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, r := range b.Records() {
		s := r.Snapshot()
		birthday := ""
		if s.Birthday != nil {
			birthday = *s.Birthday
		}
		record := []string{s.Name, birthday, strings.Join(s.Phones, "; ")}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts the book to a Markdown contact list
func ExportToMarkdown(b *book.AddressBook) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Address Book\n\n")
	buf.WriteString(fmt.Sprintf("**Contacts**: %d\n\n", b.Len()))

	for i, r := range b.Records() {
		s := r.Snapshot()
		line := fmt.Sprintf("%d. **%s**", i+1, s.Name)
		if len(s.Phones) > 0 {
			line += fmt.Sprintf(": %s", strings.Join(s.Phones, ", "))
		}
		if s.Birthday != nil {
			line += fmt.Sprintf(" (birthday: %s)", *s.Birthday)
		}
		buf.WriteString(line + "\n")
	}

	return buf.Bytes(), nil
}

// ExportToText converts the book to plain text format
func ExportToText(b *book.AddressBook) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Contacts: %d\n\n", b.Len()))

	for i, r := range b.Records() {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, r.String()))
	}

	return buf.Bytes(), nil
}
