//go:build dynring_debug

package dynring

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
