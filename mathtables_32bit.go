//go:build !(amd64 || arm64 || ppc64 || ppc64le || mips64 || mips64le || riscv64 || s390x || wasm)

package layeredmap

// Growth primes and their adjacent power-of-two-minus-one masks for
// 32-bit builds. See mathtables_64bit.go for the invariants these two
// tables must satisfy together.
var primes = [...]uint64{
	757, 1783, 3833, 7937, 16141, 32537,
	65327, 130873, 261977, 524123, 1048433, 2097013,
	4194167, 8388473, 16777121, 33554341, 67108777, 134217649,
	268435399, 536870869, 1073741789, 2147483629, 4294967291,
}

var nextPowerMasks = [...]uint64{
	1023, 2047, 4095, 8191, 16383, 32767,
	65535, 131071, 262143, 524287, 1048575, 2097151,
	4194303, 8388607, 16777215, 33554431, 67108863, 134217727,
	268435455, 536870911, 1073741823, 2147483647, 4294967295,
}

// lowestExponent = log2(nextPowerMasks[0]+1) - 1.
const lowestExponent = 9

// lowestNextPower = 2^lowestExponent.
const lowestNextPower = 512

// maxLayerCount is len(primes).
const maxLayerCount = 23
