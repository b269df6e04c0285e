// Command primegen generates a random probable prime and prints it in
// decimal and hex.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"

	"github.com/Machally/ucrypto/pkg/number"
)

func main() {
	bits := flag.Int("bits", 1024, "bit length of the prime (16-4096)")
	rounds := flag.Int("rounds", number.DefaultRounds, "Miller-Rabin rounds")
	safe := flag.Bool("safe", false, "require (p-1)/2 to be prime as well")
	flag.Parse()

	p, err := number.GeneratePrime(rand.Reader, *bits, *rounds, *safe)
	if err != nil {
		log.Fatalf("primegen: %v", err)
	}

	fmt.Printf("dec: %s\n", p.Text(10))
	fmt.Printf("hex: %s\n", p.Text(16))
}
