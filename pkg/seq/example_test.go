// 4 Oct 2026

package seq_test

import (
	"fmt"
	"log"
	"os"
	"strings"

	. "github.com/andrew-torda/alncheck/pkg/seq"
)

var set1 = `>s1
ACDaae
>s2
CCD-af
> s3
CCQaag`

func ExampleWrite() {
	set, err := ReadFasta(strings.NewReader(set1))
	if err != nil {
		log.Fatal(err)
	}
	if err := Write(os.Stdout, set, &WriteOpts{Width: 4}); err != nil {
		log.Fatal(err)
	}
	// Output:
	// > s3
	// CCQA
	// AG
	// >s1
	// ACDA
	// AE
	// >s2
	// CCD-
	// AF
}

func ExampleRemoveGaps() {
	s := RemoveGaps(Set{"A": "AC-GT", "B": "----"})
	fmt.Println(s.Names(), s["A"])
	// Output:
	// [A] ACGT
}
