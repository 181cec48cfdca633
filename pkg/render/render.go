package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/snwfog/simplelist"
)

// String renders l as {e1, e2, ..., en}, or {} when l is empty.
func String[T any](l simplelist.Iterable[T]) string {
	var sb strings.Builder
	sb.WriteByte('{')

	first := true
	it := l.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
		first = false
	}

	sb.WriteByte('}')
	return sb.String()
}

func Fprintln[T any](w io.Writer, l simplelist.Iterable[T]) error {
	if _, err := fmt.Fprintln(w, String(l)); err != nil {
		return errors.Wrap(err, "render list")
	}

	return nil
}
