package glcd

import "fmt"

// Run is a horizontal stretch of changed bytes within one page of one unit.
type Run struct {
	Unit   int
	Page   int
	Column int // first column, within the unit
	Length int
}

func (r Run) String() string {
	return fmt.Sprintf("unit %d page %d columns %d-%d", r.Unit, r.Page, r.Column, r.Column+r.Length-1)
}

// Diff returns the runs of bytes that differ between two frames, in unit, page,
// column order.
func Diff(committed, target *FrameBuffer) []Run {
	var runs []Run
	for unit := 0; unit < Units; unit++ {
		for page := 0; page < Pages; page++ {
			var (
				a = committed.Page(page)[unit*UnitColumns : (unit+1)*UnitColumns]
				b = target.Page(page)[unit*UnitColumns : (unit+1)*UnitColumns]
			)
			for column := 0; column < UnitColumns; column++ {
				if a[column] == b[column] {
					continue
				}
				if n := len(runs) - 1; n >= 0 {
					last := &runs[n]
					if last.Unit == unit && last.Page == page && last.Column+last.Length == column {
						last.Length++
						continue
					}
				}
				runs = append(runs, Run{Unit: unit, Page: page, Column: column, Length: 1})
			}
		}
	}
	return runs
}
