package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/rolo/internal/book"
)

var _ list.Item = contactItem{}

// contactItem wraps [book.Record] to implement [list.Item].
type contactItem struct {
	record *book.Record
}

func (i contactItem) FilterValue() string { return i.record.Name().String() }
func (i contactItem) Title() string       { return i.record.Name().String() }
func (i contactItem) Description() string {
	phones := i.record.Phones()
	desc := fmt.Sprintf("%d phones", len(phones))
	if len(phones) == 1 {
		desc = phones[0].String()
	}
	if bd, ok := i.record.Birthday(); ok {
		desc = fmt.Sprintf("%s • %s", desc, bd)
	}
	return desc
}
