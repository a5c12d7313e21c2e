package conformance

import "testing"

func TestCases(t *testing.T) {
	for _, c := range Cases {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			if err := Run(c); err != nil {
				t.Fatal(err)
			}
		})
	}
}
