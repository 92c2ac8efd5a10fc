package engine

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"chesscore/board"
)

// Snapshot stream layout (zstd compressed, little endian):
//
//	magic "CTRE", version uint16
//	node: 8 x uint32 board rows, turn u8, castling u8, en passant i8,
//	      score uint32 (float bits), entry count uint32,
//	      then per entry: from u8, to u8, promotion u8, node
const (
	snapshotMagic   = "CTRE"
	snapshotVersion = 1

	maxSnapshotDepth   = 1024
	maxSnapshotEntries = 1 << 12
)

var ErrBadSnapshot = errors.New("bad continuation snapshot")

// WriteSnapshot stores the whole tree below root to w.
func WriteSnapshot(w io.Writer, root *Continuation) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("create zstd encoder: %w", err)
	}
	bw := bufio.NewWriter(enc)
	if _, err := bw.WriteString(snapshotMagic); err != nil {
		enc.Close()
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint16(snapshotVersion)); err != nil {
		enc.Close()
		return err
	}
	if err := writeNode(bw, root); err != nil {
		enc.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

type nodeHeader struct {
	Rows      [8]uint32
	Turn      uint8
	Castling  uint8
	EnPassant int8
	Score     uint32
	Entries   uint32
}

type entryHeader struct {
	From      uint8
	To        uint8
	Promotion uint8
}

func writeNode(w io.Writer, c *Continuation) error {
	pos := c.Position()
	hdr := nodeHeader{
		Rows:      pos.Raw(),
		Turn:      uint8(pos.Turn()),
		Castling:  uint8(pos.Castling()),
		EnPassant: int8(pos.EnPassantIndex()),
		Score:     math.Float32bits(c.AdjustedScore),
		Entries:   uint32(c.Len()),
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return err
	}
	var err error
	c.Each(func(move board.PossibleMove, next *Continuation) bool {
		e := entryHeader{
			From:      uint8(move.From.Index()),
			To:        uint8(move.To.Index()),
			Promotion: uint8(move.Promotion),
		}
		if err = binary.Write(w, binary.LittleEndian, &e); err != nil {
			return false
		}
		err = writeNode(w, next)
		return err == nil
	})
	return err
}

// ReadSnapshot rebuilds a tree written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*Continuation, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	defer dec.Close()
	br := bufio.NewReader(dec)

	magic := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, fmt.Errorf("%w: read magic: %v", ErrBadSnapshot, err)
	}
	if string(magic) != snapshotMagic {
		return nil, fmt.Errorf("%w: unexpected magic %q", ErrBadSnapshot, magic)
	}
	var version uint16
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("%w: read version: %v", ErrBadSnapshot, err)
	}
	if version != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, version)
	}
	root, err := readNode(br, 0)
	if err != nil {
		return nil, err
	}
	if _, err := br.ReadByte(); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("%w: trailing data after tree", ErrBadSnapshot)
		}
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	return root, nil
}

func readNode(r io.Reader, depth int) (*Continuation, error) {
	if depth > maxSnapshotDepth {
		return nil, fmt.Errorf("%w: tree deeper than %d", ErrBadSnapshot, maxSnapshotDepth)
	}
	var hdr nodeHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: read node: %v", ErrBadSnapshot, err)
	}
	if hdr.Turn > uint8(board.White) {
		return nil, fmt.Errorf("%w: bad side to move %d", ErrBadSnapshot, hdr.Turn)
	}
	if hdr.Entries > maxSnapshotEntries {
		return nil, fmt.Errorf("%w: %d entries in one node", ErrBadSnapshot, hdr.Entries)
	}
	pos := board.NewPosition(board.RawBoard(hdr.Rows), board.Color(hdr.Turn),
		board.CastlingRights(hdr.Castling), int(hdr.EnPassant))
	node := NewContinuation(pos)
	node.AdjustedScore = math.Float32frombits(hdr.Score)

	for i := uint32(0); i < hdr.Entries; i++ {
		var e entryHeader
		if err := binary.Read(r, binary.LittleEndian, &e); err != nil {
			return nil, fmt.Errorf("%w: read entry: %v", ErrBadSnapshot, err)
		}
		if e.From >= board.Squares || e.To >= board.Squares || board.Kind(e.Promotion) > board.King {
			return nil, fmt.Errorf("%w: bad move encoding %v", ErrBadSnapshot, e)
		}
		next, err := readNode(r, depth+1)
		if err != nil {
			return nil, err
		}
		move := board.PossibleMove{
			From:      board.PosFromIndex(int(e.From)),
			To:        board.PosFromIndex(int(e.To)),
			Promotion: board.Kind(e.Promotion),
		}
		node.entries.insert(continuationEntry{move: move, next: next})
	}
	return node, nil
}

// SaveSnapshot writes the tree to path, creating parent directories.
func SaveSnapshot(path string, root *Continuation) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot directory %s: %w", dir, err)
		}
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create snapshot %s: %w", tmp, err)
	}
	if err := WriteSnapshot(f, root); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// LoadSnapshot reads a tree saved by SaveSnapshot. A missing file yields an
// error matching fs.ErrNotExist.
func LoadSnapshot(path string) (*Continuation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return ReadSnapshot(f)
}
