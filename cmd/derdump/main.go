// Command derdump reads a single DER-encoded value (binary, hex or PEM) and
// prints its structure as an indented tree.
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/pem"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"wickert.dev/der"
	"wickert.dev/der/dump"
)

func main() {
	var (
		in     = flag.String("in", "-", "input file (or - for stdin)")
		hexIn  = flag.Bool("hex", false, "input is hex-encoded; whitespace is ignored")
		pemIn  = flag.Bool("pem", false, "input is PEM-armored; the first block is dumped")
		layout = flag.String("time-layout", dump.DefaultTimeLayout, "Go time layout for time values")
		zone   = flag.String("time-zone", "UTC", "IANA time zone name for time values")
	)
	flag.Parse()
	log.SetFlags(0)

	data, err := readInput(*in)
	if err != nil {
		log.Fatalln("derdump:", err)
	}

	switch {
	case *pemIn:
		block, _ := pem.Decode(data)
		if block == nil {
			log.Fatalln("derdump: no PEM block in input")
		}
		data = block.Bytes
	case *hexIn:
		data = bytes.Join(bytes.Fields(data), nil)
		if data, err = hex.AppendDecode(nil, data); err != nil {
			log.Fatalln("derdump: decoding hex input:", err)
		}
	}

	loc, err := time.LoadLocation(*zone)
	if err != nil {
		log.Fatalln("derdump:", err)
	}

	node, err := der.Decode(data)
	if err != nil {
		log.Fatalln("derdump:", err)
	}
	f := dump.Formatter{TimeLayout: *layout, Location: loc}
	os.Stdout.WriteString(f.Format(node))
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}
