// SPDX-License-Identifier: MIT

// Package matrix - Batch: N equally shaped matrices in one contiguous buffer.
//
// Purpose:
//   - Carry a batch of per-sample matrices (N×r×c) with a single shape contract.
//   - Hand out no-copy *Dense views (Item) so kernels and callers can write
//     per-item results in place without extra allocation.
//
// Layout:
//   - data holds n*r*c values; item k occupies data[k*r*c : (k+1)*r*c],
//     itself row-major (offset = k*r*c + i*c + j).
//
// Complexity quicksheet:
//   - NewBatch: O(n*r*c) zero-init; Item: O(1); NewBatchFrom/Repeat: O(n*r*c) copy.

package matrix

import "fmt"

const (
	ctxBatchNew  = "NewBatch"
	ctxBatchFrom = "NewBatchFrom"
	ctxBatchItem = "Batch.Item"
)

// Batch is a stack of n matrices, each r×c, in one row-major buffer.
type Batch struct {
	n, r, c int
	data    []float64
}

// NewBatch allocates a zero batch of n matrices, each rows×cols.
//
// Errors:
//   - ErrInvalidDimensions when n, rows or cols is not positive.
//
// Complexity: Time O(n*r*c), Space O(n*r*c).
func NewBatch(n, rows, cols int) (*Batch, error) {
	if n <= 0 || rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d,%d): %w", ctxBatchNew, n, rows, cols, ErrInvalidDimensions)
	}

	return &Batch{n: n, r: rows, c: cols, data: make([]float64, n*rows*cols)}, nil
}

// NewBatchFrom copies items into a new batch. All items must share one shape.
//
// Implementation:
//   - Stage 1: reject an empty list and nil items.
//   - Stage 2: compare every shape with the first item's (no broadcasting).
//   - Stage 3: copy item data in index order.
//
// Errors:
//   - ErrInvalidDimensions (no items), ErrNilMatrix (nil item),
//     ErrDimensionMismatch (item shape differs from the first).
func NewBatchFrom(items ...Matrix) (*Batch, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxBatchFrom, ErrInvalidDimensions)
	}
	for k, it := range items {
		if err := ValidateNotNil(it); err != nil {
			return nil, fmt.Errorf("%s: item %d: %w", ctxBatchFrom, k, err)
		}
	}
	rows, cols := items[0].Rows(), items[0].Cols()
	b, err := NewBatch(len(items), rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxBatchFrom, err)
	}
	size := rows * cols
	for k, it := range items {
		if it.Rows() != rows || it.Cols() != cols {
			return nil, fmt.Errorf("%s: item %d is %dx%d, want %dx%d: %w",
				ctxBatchFrom, k, it.Rows(), it.Cols(), rows, cols, ErrDimensionMismatch)
		}
		dst := b.data[k*size : (k+1)*size]
		if d, ok := it.(*Dense); ok {
			copy(dst, d.data)
			continue
		}
		// Fallback: generic At path with fixed i→j order.
		var v float64
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if v, err = it.At(i, j); err != nil {
					return nil, fmt.Errorf("%s: item %d: %w", ctxBatchFrom, k, err)
				}
				dst[i*cols+j] = v
			}
		}
	}

	return b, nil
}

// Repeat builds a batch holding n copies of m.
// Errors: ErrInvalidDimensions (n<=0), ErrNilMatrix.
func Repeat(m Matrix, n int) (*Batch, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Repeat: n=%d: %w", n, ErrInvalidDimensions)
	}
	items := make([]Matrix, n)
	for k := range items {
		items[k] = m
	}

	return NewBatchFrom(items...)
}

// Len returns the number of matrices in the batch.
func (b *Batch) Len() int { return b.n }

// Rows returns the row count of every item.
func (b *Batch) Rows() int { return b.r }

// Cols returns the column count of every item.
func (b *Batch) Cols() int { return b.c }

// Shape returns (n, rows, cols).
func (b *Batch) Shape() (n, rows, cols int) { return b.n, b.r, b.c }

// Item returns a no-copy view of matrix k. Writes through the view update the batch.
// The view's numeric policy is off: batch buffers hold raw kernel output.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (b *Batch) Item(k int) (*Dense, error) {
	if k < 0 || k >= b.n {
		return nil, fmt.Errorf("%s(%d): %w", ctxBatchItem, k, ErrOutOfRange)
	}
	size := b.r * b.c

	return newDenseView(b.r, b.c, b.data[k*size:(k+1)*size:(k+1)*size], false), nil
}

// item is Item without bounds checks, for kernels that already validated k.
func (b *Batch) item(k int) *Dense {
	size := b.r * b.c

	return newDenseView(b.r, b.c, b.data[k*size:(k+1)*size:(k+1)*size], false)
}

// Clone returns a deep copy of the batch.
func (b *Batch) Clone() *Batch {
	cp := make([]float64, len(b.data))
	copy(cp, b.data)

	return &Batch{n: b.n, r: b.r, c: b.c, data: cp}
}

// Values returns a copy of the flat buffer (item-major, then row-major).
func (b *Batch) Values() []float64 {
	out := make([]float64, len(b.data))
	copy(out, b.data)

	return out
}

// SumAbs returns Σ|b[k,i,j]| over the whole batch (entrywise L1 norm).
// Errors: ErrNilMatrix.
func (b *Batch) SumAbs() (float64, error) {
	if b == nil {
		return 0, fmt.Errorf("Batch.SumAbs: %w", ErrNilMatrix)
	}

	return sumAbs(b.data), nil
}

// Sign returns a batch with sign(b[k,i,j]) ∈ {-1, 0, +1}; NaN maps to NaN.
// Errors: ErrNilMatrix.
func (b *Batch) Sign() (*Batch, error) {
	if b == nil {
		return nil, fmt.Errorf("Batch.Sign: %w", ErrNilMatrix)
	}
	out := &Batch{n: b.n, r: b.r, c: b.c, data: make([]float64, len(b.data))}
	signInto(out.data, b.data)

	return out, nil
}

// AddScaled accumulates alpha*other into b in place (b += alpha*other).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(n*r*c).
func (b *Batch) AddScaled(alpha float64, other *Batch) error {
	if b == nil || other == nil {
		return fmt.Errorf("Batch.AddScaled: %w", ErrNilMatrix)
	}
	if b.n != other.n || b.r != other.r || b.c != other.c {
		return fmt.Errorf("Batch.AddScaled: %w", ErrDimensionMismatch)
	}
	for idx := range b.data {
		b.data[idx] += alpha * other.data[idx]
	}

	return nil
}

// SetItemScaled overwrites item k with alpha*m. Distinct k may be written
// concurrently; each call touches only its own slice of the buffer.
//
// Errors: ErrNilMatrix, ErrOutOfRange, ErrDimensionMismatch (m shape != item shape).
func (b *Batch) SetItemScaled(k int, m Matrix, alpha float64) error {
	if b == nil {
		return fmt.Errorf("Batch.SetItemScaled: %w", ErrNilMatrix)
	}
	if k < 0 || k >= b.n {
		return fmt.Errorf("Batch.SetItemScaled(%d): %w", k, ErrOutOfRange)
	}
	src, err := flatten(m, "Batch.SetItemScaled")
	if err != nil {
		return err
	}
	if m.Rows() != b.r || m.Cols() != b.c {
		return fmt.Errorf("Batch.SetItemScaled(%d): %w", k, ErrDimensionMismatch)
	}
	dst := b.item(k).data
	for idx, v := range src {
		dst[idx] = alpha * v
	}

	return nil
}
