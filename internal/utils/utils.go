package utils

// IsPrime - Returns true if n is a prime number
func IsPrime(n int64) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n <= 1 || n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// NearestPrime - Returns n if it is a prime, otherwise the nearest higher prime number.
// Double hashing only visits every slot of a table once and only once when the table size is a prime.
func NearestPrime(n int64) int64 {
	if n < 2 {
		return 2
	}

	for !IsPrime(n) {
		n++
	}

	return n
}
