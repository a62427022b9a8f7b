//go:build amd64 || arm64 || ppc64 || ppc64le || mips64 || mips64le || riscv64 || s390x || wasm

package layeredmap

// Growth primes and their adjacent power-of-two-minus-one masks for
// 64-bit builds. primes[i] is the i-th growth target; nextPowerMasks[i]
// is the bitmask rawHash is folded through before the modulus. Both
// satisfy nextPowerMasks[i] < primes[i+1] < nextPowerMasks[i+1].
var primes = [...]uint64{
	2633, 6733, 14929, 31321, 64091, 129643,
	260723, 522883, 1047173, 2095759, 4192919, 8387231,
	16775849, 33553103, 67107569, 134216461, 268434193, 536869651,
	1073740571, 2147482417, 4294966099, 8589933397, 17179867997, 34359737227,
	68719475599, 137438952341, 274877905823, 549755812831, 1099511626727, 2199023254517,
	4398046510073, 8796093021181, 17592186043451, 35184372087881, 70368744176729, 140737488354413,
	281474976709757, 562949953420457, 1125899906841811, 2251799813684467, 4503599627369863, 9007199254740397,
}

var nextPowerMasks = [...]uint64{
	4095, 8191, 16383, 32767, 65535, 131071,
	262143, 524287, 1048575, 2097151, 4194303, 8388607,
	16777215, 33554431, 67108863, 134217727, 268435455, 536870911,
	1073741823, 2147483647, 4294967295, 8589934591, 17179869183, 34359738367,
	68719476735, 137438953471, 274877906943, 549755813887, 1099511627775, 2199023255551,
	4398046511103, 8796093022207, 17592186044415, 35184372088831, 70368744177663, 140737488355327,
	281474976710655, 562949953421311, 1125899906842623, 2251799813685247, 4503599627370495, 9007199254740991,
}

// lowestExponent = log2(nextPowerMasks[0]+1) - 1.
const lowestExponent = 11

// lowestNextPower = 2^lowestExponent.
const lowestNextPower = 2048

// maxLayerCount is len(primes).
const maxLayerCount = 42
