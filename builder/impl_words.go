// SPDX-License-Identifier: MIT
// Package: fwdindex/builder
//
// impl_words.go - Hypercube and DeBruijn constructors. Both label vertices
// with fixed-length words, so cfg.idFn is not consulted.
//
// Hypercube(d):
//   - vertices: all d-bit strings, most significant bit first
//   - edges: for v ascending, for bit b = 0..d-1, v-v^(1<<b) when v < v^(1<<b)
//
// DeBruijn(k, n):
//   - vertices: all length-n words over the first k symbols of deBruijnAlphabet
//   - edges: for w ascending, for s ascending, w-(w[1:]+s) unless that is w
//     itself or the edge already exists (the undirected, simple version of
//     the shift graph)

package builder

import (
	"fmt"

	"github.com/katalvlaran/fwdindex/core"
)

// Hypercube returns a Constructor for the d-dimensional hypercube Q_d
// (d ≥ 1, 2^d ≤ MaxVertices).
// Complexity: O(d·2^d).
func Hypercube(d int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if d < MinHypercubeDim {
			return fmt.Errorf("%s: d=%d < min=%d: %w", MethodHypercube, d, MinHypercubeDim, ErrTooFewVertices)
		}
		n, ok := pow(2, d)
		if !ok {
			return fmt.Errorf("%s: d=%d: %w", MethodHypercube, d, ErrTooLarge)
		}
		for v := 0; v < n; v++ {
			if err := addVertex(g, MethodHypercube, word(v, 2, d)); err != nil {
				return err
			}
		}
		for v := 0; v < n; v++ {
			for b := 0; b < d; b++ {
				w := v ^ (1 << b)
				if v < w {
					if err := addEdge(g, MethodHypercube, word(v, 2, d), word(w, 2, d)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// DeBruijn returns a Constructor for the undirected de Bruijn graph B(k, n)
// over k symbols and words of length n (2 ≤ k ≤ 36, n ≥ 1, k^n ≤ MaxVertices).
// Complexity: O(k^(n+1)·k).
func DeBruijn(k, n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if k < MinDeBruijnSymbol {
			return fmt.Errorf("%s: k=%d < min=%d: %w", MethodDeBruijn, k, MinDeBruijnSymbol, ErrTooFewVertices)
		}
		if n < MinDeBruijnLength {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodDeBruijn, n, MinDeBruijnLength, ErrTooFewVertices)
		}
		if k > len(deBruijnAlphabet) {
			return fmt.Errorf("%s: k=%d > %d symbols: %w", MethodDeBruijn, k, len(deBruijnAlphabet), ErrTooLarge)
		}
		total, ok := pow(k, n)
		if !ok {
			return fmt.Errorf("%s: k=%d n=%d: %w", MethodDeBruijn, k, n, ErrTooLarge)
		}

		for v := 0; v < total; v++ {
			if err := addVertex(g, MethodDeBruijn, word(v, k, n)); err != nil {
				return err
			}
		}
		for v := 0; v < total; v++ {
			u := word(v, k, n)
			for s := 0; s < k; s++ {
				// shift left by one symbol and append s
				w := word((v*k+s)%total, k, n)
				if w == u || g.HasEdge(u, w) {
					continue
				}
				if err := addEdge(g, MethodDeBruijn, u, w); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// word renders v as a length-digits word in base k, most significant first.
func word(v, k, digits int) string {
	buf := make([]byte, digits)
	for i := digits - 1; i >= 0; i-- {
		buf[i] = deBruijnAlphabet[v%k]
		v /= k
	}

	return string(buf)
}

// pow returns base^exp and false if the result exceeds MaxVertices.
func pow(base, exp int) (int, bool) {
	n := 1
	for i := 0; i < exp; i++ {
		n *= base
		if n > MaxVertices {
			return 0, false
		}
	}

	return n, true
}
