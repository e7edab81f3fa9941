package id

import (
	crand "crypto/rand"
	"encoding/binary"
	"strconv"
	"sync"

	"github.com/benz9527/xbst/lib/infra"
)

const (
	nanoIDMinLength = 2
	nanoIDMaxLength = 255
)

var classicNanoIDAlphabet = [64]byte{
	'A', 'B', 'C', 'D', 'E',
	'F', 'G', 'H', 'I', 'J',
	'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T',
	'U', 'V', 'W', 'X', 'Y',
	'Z', 'a', 'b', 'c', 'd',
	'e', 'f', 'g', 'h', 'i',
	'j', 'k', 'l', 'm', 'n',
	'o', 'p', 'q', 'r', 's',
	't', 'u', 'v', 'w', 'x',
	'y', 'z', '0', '1', '2',
	'3', '4', '5', '6', '7',
	'8', '9', '-', '_',
}

func rngUint32() uint32 {
	buf := [4]byte{}
	if _, err := crand.Read(buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint32(buf[:])
}

// Partial shuffle, the alphabet order differs per process.
func shuffle(arr []byte) {
	size := uint32(len(arr))
	for i := uint32(0); i < size>>1; i++ {
		j := rngUint32() % size
		arr[i], arr[j] = arr[j], arr[i]
	}
}

func init() {
	shuffle(classicNanoIDAlphabet[:])
}

// ClassicNanoID pre-allocates length*length*8 random bytes and refills
// them once they have been used up.
func ClassicNanoID(length int) (NanoIDGen, error) {
	if length < nanoIDMinLength || length > nanoIDMaxLength {
		return nil, infra.NewErrorStack("[nano-id] invalid length " + strconv.Itoa(length))
	}

	preAllocSize := length * length * 8
	bytes := make([]byte, preAllocSize)
	if _, err := crand.Read(bytes); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[nano-id] pre-allocate bytes failed")
	}
	nanoID := make([]byte, length)
	offset := 0
	mask := byte(len(classicNanoIDAlphabet) - 1)

	var lock sync.Mutex
	return func() string {
		lock.Lock()
		defer lock.Unlock()

		if offset == preAllocSize {
			if _, err := crand.Read(bytes); /* impossible */ err != nil {
				panic(infra.WrapErrorStackWithMessage(err, "[nano-id] pre-allocate bytes failed (run out of data)"))
			}
			offset = 0
		}

		for i := 0; i < length; i++ {
			nanoID[i] = classicNanoIDAlphabet[bytes[i+offset]&mask]
		}
		offset += length
		return string(nanoID)
	}, nil
}
