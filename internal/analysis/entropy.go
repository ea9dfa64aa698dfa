// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

// Package analysis implements the advisory quality checks: statistical
// randomness tests over generated entropy and strength scoring for seed
// passphrases. Analyzers never fail and never gate an operation; a
// cryptographically secure source occasionally produces benign outliers,
// so results are warnings, not a security boundary. Reports never echo the
// material they were computed from.
package analysis

import (
	"fmt"
	"math"
)

// Verdict is the aggregate outcome of an analysis.
type Verdict string

const (
	VerdictAcceptable   Verdict = "acceptable"
	VerdictSuspicious   Verdict = "suspicious"
	VerdictInsufficient Verdict = "insufficient sample"
)

// CheckResult is the outcome of one statistical sub-test.
type CheckResult struct {
	Name   string
	Passed bool
	Score  float64 // 0.0 worst .. 1.0 best
	Detail string
}

// EntropyReport summarizes the randomness checks over one entropy buffer.
// Immutable once produced; it carries no copy of the entropy itself.
type EntropyReport struct {
	SampleBytes int
	BitBalance  CheckResult
	ByteSpread  CheckResult
	LongestRun  CheckResult
	Patterns    CheckResult
	ShannonBits float64 // estimated bits per byte
	Score       float64
	Verdict     Verdict
	Issues      []string
}

// AnalyzeEntropy runs the statistical test battery over an entropy buffer.
// It reads the buffer but never retains or mutates it. Buffers shorter
// than 16 bytes yield an "insufficient sample" verdict with no sub-test
// conclusions.
func AnalyzeEntropy(entropy []byte) EntropyReport {
	report := EntropyReport{SampleBytes: len(entropy), Score: 1.0}
	if len(entropy) < 16 {
		report.Verdict = VerdictInsufficient
		report.Score = 0
		return report
	}

	report.BitBalance = bitBalanceCheck(entropy)
	report.ByteSpread = byteSpreadCheck(entropy)
	report.LongestRun = longestRunCheck(entropy)
	report.Patterns = patternCheck(entropy)
	report.ShannonBits = shannonBitsPerByte(entropy)

	hardFlag := !report.Patterns.Passed
	for _, c := range []CheckResult{report.BitBalance, report.ByteSpread, report.LongestRun, report.Patterns} {
		if !c.Passed {
			report.Issues = append(report.Issues, c.Detail)
		}
		report.Score *= c.Score
	}

	// Shannon entropy caps at log2(sample size) for short buffers, so the
	// ratio is taken against the reachable maximum, not 8 bits.
	maxShannon := math.Log2(float64(len(entropy)))
	if maxShannon > 8 {
		maxShannon = 8
	}
	if ratio := report.ShannonBits / maxShannon; ratio < 0.7 {
		report.Issues = append(report.Issues,
			fmt.Sprintf("low shannon entropy: %.2f bits per byte", report.ShannonBits))
		report.Score *= ratio
	}

	switch {
	case hardFlag || report.Score < 0.5:
		report.Verdict = VerdictSuspicious
	default:
		report.Verdict = VerdictAcceptable
	}
	return report
}

// bitBalanceCheck verifies the fraction of set bits sits in a three-sigma
// band around 0.5.
func bitBalanceCheck(entropy []byte) CheckResult {
	bits := len(entropy) * 8
	set := 0
	for _, b := range entropy {
		for i := 0; i < 8; i++ {
			if b&(1<<i) != 0 {
				set++
			}
		}
	}
	frac := float64(set) / float64(bits)
	sigma := 0.5 / math.Sqrt(float64(bits))
	dev := math.Abs(frac - 0.5)

	result := CheckResult{Name: "bit balance", Passed: dev <= 3*sigma, Score: 1.0}
	if !result.Passed {
		result.Score = math.Max(0, 1.0-dev*2)
		result.Detail = fmt.Sprintf("bit balance %.3f is outside the expected band around 0.5", frac)
	}
	return result
}

// byteSpreadCheck runs a chi-square goodness-of-fit of byte values against
// the uniform distribution. A healthy sample lands near 255 (the degrees
// of freedom) regardless of length, so only values past the three-sigma
// tail count against the score. With at most 32 bytes over 256 bins this
// is a coarse heuristic; only severe skew fails it.
func byteSpreadCheck(entropy []byte) CheckResult {
	var counts [256]int
	for _, b := range entropy {
		counts[b]++
	}
	expected := float64(len(entropy)) / 256.0
	chi := 0.0
	for _, c := range counts {
		diff := float64(c) - expected
		chi += diff * diff / expected
	}
	const df = 255.0
	limit := df + 3*math.Sqrt(2*df)
	score := 1.0
	if chi > limit {
		score = math.Max(0, 1.0-(chi-limit)/(3*limit))
	}

	result := CheckResult{Name: "byte distribution", Passed: score >= 0.7, Score: score}
	if !result.Passed {
		result.Detail = "byte values are poorly distributed"
	}
	return result
}

// longestRunCheck bounds the longest run of identical bits by an
// expected-maximum heuristic (roughly log2 of the bit count, plus slack
// for benign outliers).
func longestRunCheck(entropy []byte) CheckResult {
	bits := len(entropy) * 8
	longest, run := 0, 0
	last := -1
	for i := 0; i < bits; i++ {
		bit := int(entropy[i/8]>>(7-i%8)) & 1
		if bit == last {
			run++
		} else {
			run = 1
			last = bit
		}
		if run > longest {
			longest = run
		}
	}
	limit := int(math.Log2(float64(bits))) + 5

	result := CheckResult{Name: "longest bit run", Passed: longest <= limit, Score: 1.0}
	if !result.Passed {
		result.Score = 0.3
		result.Detail = fmt.Sprintf("run of %d identical bits exceeds the expected maximum %d", longest, limit)
	}
	return result
}

// patternCheck flags constant buffers, short repeating byte patterns and
// counting sequences. A constant buffer is suspicious regardless of what
// the other tests say.
func patternCheck(entropy []byte) CheckResult {
	result := CheckResult{Name: "pattern scan", Passed: true, Score: 1.0}

	if constantBuffer(entropy) {
		result.Passed = false
		result.Score = 0
		result.Detail = fmt.Sprintf("entropy is %d copies of the same byte", len(entropy))
		return result
	}
	if repeatingPattern(entropy) {
		result.Passed = false
		result.Score = 0.3
		result.Detail = "repeating byte patterns detected"
		return result
	}
	if sequentialPattern(entropy) {
		result.Passed = false
		result.Score = 0.5
		result.Detail = "sequential byte patterns detected (counting sequence)"
	}
	return result
}

func constantBuffer(data []byte) bool {
	for _, b := range data[1:] {
		if b != data[0] {
			return false
		}
	}
	return true
}

// repeatingPattern looks for 2-byte and 4-byte periodicity.
func repeatingPattern(data []byte) bool {
	two := 0
	for i := 0; i+3 < len(data); i++ {
		if data[i] == data[i+2] && data[i+1] == data[i+3] {
			two++
		} else {
			two = 0
		}
		if two >= 3 {
			return true
		}
	}
	four := 0
	for i := 0; i+7 < len(data); i++ {
		if data[i] == data[i+4] && data[i+1] == data[i+5] && data[i+2] == data[i+6] && data[i+3] == data[i+7] {
			four++
		} else {
			four = 0
		}
		if four >= 4 {
			return true
		}
	}
	return false
}

// sequentialPattern detects ascending or descending byte runs of length 4+.
func sequentialPattern(data []byte) bool {
	asc, desc := 0, 0
	for i := 1; i < len(data); i++ {
		if data[i] == data[i-1]+1 {
			asc++
		} else {
			asc = 0
		}
		if data[i] == data[i-1]-1 {
			desc++
		} else {
			desc = 0
		}
		if asc >= 3 || desc >= 3 {
			return true
		}
	}
	return false
}

// shannonBitsPerByte estimates the Shannon entropy of the byte histogram.
func shannonBitsPerByte(data []byte) float64 {
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}
	total := float64(len(data))
	h := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		h -= p * math.Log2(p)
	}
	return h
}
