package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/snwfog/simplelist"
	"github.com/snwfog/simplelist/pkg/digest"
	"github.com/snwfog/simplelist/pkg/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	var (
		ints, strs string
		digests    bool
	)

	fs := flag.NewFlagSet("simplelist", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.StringVar(&ints, "ints", "1,2,3,4,5,6,7,8,9", "comma separated integers, each inserted at the head")
	fs.StringVar(&strs, "strings", "a,b,c,d,e,f", "comma separated strings, each inserted at the head")
	fs.BoolVar(&digests, "digest", false, "print the siphash digest after each list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	n, err := atois(split(ints))
	if err != nil {
		return err
	}

	list1 := createList(n...)
	if err := printList[int](w, "", list1, digests); err != nil {
		return err
	}

	list2 := createList(split(strs)...)
	if err := printList[string](w, "", list2, digests); err != nil {
		return err
	}

	return printList[int](w, "Tail of list: ", list1.Tail(), digests)
}

// createList inserts every value at the head, so the list holds them in
// reverse order.
func createList[T any](values ...T) *simplelist.LinkedList[T] {
	l := simplelist.New[T]()
	for _, v := range values {
		l.InsertAtHead(v)
	}
	return l
}

func printList[T any](w io.Writer, label string, l *simplelist.LinkedList[T], digests bool) error {
	if label != "" {
		if _, err := io.WriteString(w, label); err != nil {
			return errors.Wrap(err, "print label")
		}
	}

	if !digests {
		return render.Fprintln[T](w, l)
	}

	_, err := fmt.Fprintf(w, "%s digest=%016x\n", render.String[T](l), digest.Of(l.All()))
	return errors.Wrap(err, "print list")
}

func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func atois(tokens []string) ([]int, error) {
	n := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		x, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, errors.Wrapf(err, "parse -ints token %q", tok)
		}
		n = append(n, x)
	}
	return n, nil
}
