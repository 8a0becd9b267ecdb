package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"xdao.co/multiformats/cid"
	"xdao.co/multiformats/multibase"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: cidinspect <cid>")
		os.Exit(2)
	}
	c, err := cid.Decode(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("version:  %d\n", c.Version())
	fmt.Printf("codec:    %s (0x%x)\n", c.Codec(), c.Codec().Code())
	fmt.Printf("hash:     %s (0x%x)\n", c.Hash(), c.Hash().Code())
	fmt.Printf("digest:   %s\n", hex.EncodeToString(c.Digest()))
	fmt.Printf("base:     %s\n", c.Base())

	b, err := c.Bytes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("binary:   %s\n", hex.EncodeToString(b))

	if c.Version() == 0 {
		up, err := c.ToV1().TextOfBase(multibase.Base32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "upgrade: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("as v1:    %s\n", up)
	}
}
