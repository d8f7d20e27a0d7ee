// Package buildinfo хранит сведения о сборке, переданные через -ldflags.
package buildinfo

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// NotAvailable подставляется вместо незаданных значений
const NotAvailable = "N/A"

// Info содержит версию, дату сборки и commit
type Info struct {
	Version string
	Date    string
	Commit  string
}

// New создает Info. Пустые значения заменяются на NotAvailable.
func New(version, date, commit string) Info {
	return Info{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

// Fprint выводит сведения о сборке построчно
func (i Info) Fprint(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", i.Version, i.Date, i.Commit)
	return err
}

// Fields возвращает сведения о сборке как поля лога
func (i Info) Fields() []zap.Field {
	return []zap.Field{
		zap.String("version", i.Version),
		zap.String("build_date", i.Date),
		zap.String("commit", i.Commit),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("Version: %s, Date: %s, Commit: %s", i.Version, i.Date, i.Commit)
}
