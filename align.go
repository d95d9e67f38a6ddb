package diffx

import "sort"

type opTag int

const (
	opEqual opTag = iota
	opReplace
	opDelete
	opInsert
)

// opcode is a maximal run covering old[i1:i2] and new[j1:j2]
type opcode struct {
	tag            opTag
	i1, i2, j1, j2 int
}

type matchBlock struct {
	a, b, size int
}

// Align pairs two line sequences position by position and classifies
// every resulting pair. Equal runs produce Unchanged pairs, replace
// runs are padded with empty strings up to the longer side and every
// pair in them is Modified, delete and insert runs produce Removed and
// Added pairs with the missing side empty. Output follows document
// order and the call is pure and deterministic.
func Align(oldLines, newLines []string) []AlignedLine {
	var aligned []AlignedLine

	for _, op := range opcodes(oldLines, newLines) {
		switch op.tag {
		case opEqual:
			for k := 0; k < op.i2-op.i1; k++ {
				aligned = append(aligned, AlignedLine{
					Old:    oldLines[op.i1+k],
					New:    newLines[op.j1+k],
					Status: LineUnchanged,
				})
			}
		case opReplace:
			// Pad the shorter side; padded positions stay Modified
			oldLen := op.i2 - op.i1
			newLen := op.j2 - op.j1
			runLen := max(oldLen, newLen)
			for k := 0; k < runLen; k++ {
				pair := AlignedLine{Status: LineModified}
				if k < oldLen {
					pair.Old = oldLines[op.i1+k]
				}
				if k < newLen {
					pair.New = newLines[op.j1+k]
				}
				aligned = append(aligned, pair)
			}
		case opDelete:
			for k := op.i1; k < op.i2; k++ {
				aligned = append(aligned, AlignedLine{
					Old:    oldLines[k],
					Status: LineRemoved,
				})
			}
		case opInsert:
			for k := op.j1; k < op.j2; k++ {
				aligned = append(aligned, AlignedLine{
					New:    newLines[k],
					Status: LineAdded,
				})
			}
		}
	}

	return aligned
}

// opcodes partitions both sequences into equal/replace/delete/insert
// runs derived from the matching blocks
func opcodes(a, b []string) []opcode {
	var ops []opcode

	i, j := 0, 0
	for _, m := range matchingBlocks(a, b) {
		switch {
		case i < m.a && j < m.b:
			ops = append(ops, opcode{opReplace, i, m.a, j, m.b})
		case i < m.a:
			ops = append(ops, opcode{opDelete, i, m.a, j, m.b})
		case j < m.b:
			ops = append(ops, opcode{opInsert, i, m.a, j, m.b})
		}

		i, j = m.a+m.size, m.b+m.size
		if m.size > 0 {
			ops = append(ops, opcode{opEqual, m.a, i, m.b, j})
		}
	}

	return ops
}

// matchingBlocks finds non-overlapping matching blocks by recursively
// splitting around the longest match of each region. Blocks come back
// sorted, adjacent blocks merged, plus a zero-length terminal block.
func matchingBlocks(a, b []string) []matchBlock {
	b2j := make(map[string][]int, len(b))
	for j, line := range b {
		b2j[line] = append(b2j[line], j)
	}

	type region struct {
		alo, ahi, blo, bhi int
	}

	stack := []region{{0, len(a), 0, len(b)}}
	var matched []matchBlock
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m := longestMatch(a, b2j, r.alo, r.ahi, r.blo, r.bhi)
		if m.size == 0 {
			continue
		}

		matched = append(matched, m)
		if r.alo < m.a && r.blo < m.b {
			stack = append(stack, region{r.alo, m.a, r.blo, m.b})
		}
		if m.a+m.size < r.ahi && m.b+m.size < r.bhi {
			stack = append(stack, region{m.a + m.size, r.ahi, m.b + m.size, r.bhi})
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].a != matched[j].a {
			return matched[i].a < matched[j].a
		}
		return matched[i].b < matched[j].b
	})

	// Merge blocks that touch on both sides
	var blocks []matchBlock
	for _, m := range matched {
		if n := len(blocks); n > 0 &&
			blocks[n-1].a+blocks[n-1].size == m.a &&
			blocks[n-1].b+blocks[n-1].size == m.b {
			blocks[n-1].size += m.size
			continue
		}
		blocks = append(blocks, m)
	}

	return append(blocks, matchBlock{len(a), len(b), 0})
}

// longestMatch finds the longest block of equal lines with
// a[besti:besti+size] == b[bestj:bestj+size] inside the given region.
// Ties go to the earliest block in a, then the earliest in b.
func longestMatch(a []string, b2j map[string][]int, alo, ahi, blo, bhi int) matchBlock {
	best := matchBlock{a: alo, b: blo}

	// j2len[j] is the length of the match ending at a[i-1], b[j]
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > best.size {
				best = matchBlock{a: i - k + 1, b: j - k + 1, size: k}
			}
		}
		j2len = next
	}

	return best
}
