package application

import "encoding/binary"

// EncodeReceiveMessage builds the canonical message signed by the trusted
// signer set for an inbound transfer. Field order and the little-endian
// encoding of the two integers are part of the wire contract shared with the
// gateway; changing either breaks signature verification.
func EncodeReceiveMessage(
	originChainID uint64, originTxHash []byte,
	uri, name, symbol string, originalOwner []byte, nonce uint64,
) []byte {
	size := 16 + len(originTxHash) + len(uri) + len(name) + len(symbol) + len(originalOwner)
	buf := make([]byte, 0, size)
	buf = binary.LittleEndian.AppendUint64(buf, originChainID)
	buf = append(buf, originTxHash...)
	buf = append(buf, uri...)
	buf = append(buf, name...)
	buf = append(buf, symbol...)
	buf = append(buf, originalOwner...)
	buf = binary.LittleEndian.AppendUint64(buf, nonce)
	return buf
}
