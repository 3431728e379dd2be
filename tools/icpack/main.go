// Command icpack compresses RGB images into the interpolative lossless
// container and back, reporting sizes and timings.
package main

import (
	"fmt"
	"log"
	"os"
)

const usage = `Usage:
  icpack encode <input.(png|jpg|gif|qoi)> <output.icp>
  icpack decode <input.icp> <output.(png|qoi)>
  icpack info <input.icp>
`

func main() {
	log.SetFlags(0)

	if len(os.Args) < 3 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	var err error
	switch cmd := os.Args[1]; {
	case cmd == "encode" && len(os.Args) == 4:
		err = runEncode(os.Args[2], os.Args[3])
	case cmd == "decode" && len(os.Args) == 4:
		err = runDecode(os.Args[2], os.Args[3])
	case cmd == "info" && len(os.Args) == 3:
		err = runInfo(os.Args[2])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		log.Fatalf("%s failed: %v", os.Args[1], err)
	}
}
