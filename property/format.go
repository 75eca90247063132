package property

import "fmt"

// String formats the held value with %v.
func (p *Property[T]) String() string {
	return fmt.Sprint(p.value)
}

// Scan implements fmt.Scanner. The scanned value goes through Set, so
// subscribers are notified when it differs from the current one.
func (p *Property[T]) Scan(state fmt.ScanState, verb rune) error {
	var v T
	if _, err := fmt.Fscan(state, &v); err != nil {
		return fmt.Errorf("scanning property: %w", err)
	}
	p.Set(v)
	return nil
}
