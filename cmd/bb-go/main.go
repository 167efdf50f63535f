package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aztecprotocol/bb-go/pkg/bb"
	"github.com/aztecprotocol/bb-go/pkg/bb/codec"
	"github.com/aztecprotocol/bb-go/pkg/bb/curve"
	"github.com/aztecprotocol/bb-go/pkg/bb/field"
)

type keyDeriver interface {
	SchnorrComputePublicKey(priv field.Fr) (curve.Point, error)
}

// parsePrivateKey decodes a hex private key and clears the intermediate
// byte slice.
func parsePrivateKey(s string) (field.Fr, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return field.Fr{}, fmt.Errorf("decode private key: %w", err)
	}
	defer bb.ZeroizeBytes(raw)
	priv, err := codec.Decode[field.Fr](raw)
	if err != nil {
		return field.Fr{}, fmt.Errorf("private key: %w", err)
	}
	return priv, nil
}

// derivePublicKey computes the public key for *priv and zeroes *priv
// afterwards, whether or not the call succeeds.
func derivePublicKey(k keyDeriver, priv *field.Fr) (curve.Point, error) {
	defer bb.ZeroizeBytes(priv.Data[:])
	return k.SchnorrComputePublicKey(*priv)
}

func main() {
	privHex := flag.String("schnorr-priv", "", "hex-encoded 32-byte private key; prints the public key point")
	flag.Parse()

	log.Printf("bb-go version: %s", bb.WrapperVersion())
	log.Printf("barretenberg upstream: %s (%s)", bb.UpstreamVersion(), bb.UpstreamDir)

	eng, err := bb.Open(bb.Config{EnableZeroization: true})
	if err != nil {
		if errors.Is(err, bb.ErrNotBuilt) {
			fmt.Printf("engine unavailable: %v\n", err)
			return
		}
		log.Fatalf("unexpected failure opening engine: %v", err)
	}
	defer func() {
		if cerr := eng.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	if *privHex == "" {
		fmt.Println("engine opened")
		return
	}

	priv, err := parsePrivateKey(*privHex)
	if err != nil {
		log.Fatal(err)
	}

	pub, err := derivePublicKey(eng, &priv)
	if err != nil {
		log.Printf("compute public key: %v", err)
		os.Exit(1)
	}
	fmt.Println(hex.EncodeToString(pub.ToBuffer()))
}
