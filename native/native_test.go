package native

import (
	"errors"
	"testing"
)

func TestGBText(t *testing.T) {
	encoded, err := EncodeGBText("PIKACHU", GBNameSize)
	if err != nil {
		t.Fatal(err)
	}
	if len(encoded) != GBNameSize {
		t.Fatalf("expected %d bytes, got %d", GBNameSize, len(encoded))
	}
	if encoded[0] != 0x8F || encoded[7] != gbTerminator {
		t.Errorf("unexpected encoding % X", encoded)
	}
	decoded, err := DecodeGBText(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded != "PIKACHU" {
		t.Errorf("expected PIKACHU, got %s", decoded)
	}

	if _, err := EncodeGBText("ABCDEFGHIJK", GBNameSize); !errors.Is(err, ErrBadText) {
		t.Errorf("expected ErrBadText for 11 characters, got %v", err)
	}
	if _, err := EncodeGBText("Poké", GBNameSize); !errors.Is(err, ErrBadText) {
		t.Errorf("expected ErrBadText for é, got %v", err)
	}
	if _, err := DecodeGBText([]byte{0x80, 0x01, gbTerminator}); !errors.Is(err, ErrBadText) {
		t.Errorf("expected ErrBadText for an unmapped byte, got %v", err)
	}
}

func TestGBAText(t *testing.T) {
	for _, s := range []string{"Mightyena", "Poké 9!", "ABCDEFGHIJ"} {
		encoded, err := EncodeGBAText(s, GBANicknameSize)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		decoded, err := DecodeGBAText(encoded)
		if err != nil {
			t.Fatal(err)
		}
		if decoded != s {
			t.Errorf("expected %q, got %q", s, decoded)
		}
	}
	if _, err := EncodeGBAText("ABCDEFGHIJK", GBANicknameSize); !errors.Is(err, ErrBadText) {
		t.Errorf("expected ErrBadText, got %v", err)
	}
}

func TestUTF16Text(t *testing.T) {
	encoded, err := EncodeUTF16BE("Poké", GCNNameSize)
	if err != nil {
		t.Fatal(err)
	}
	if encoded[0] != 0 || encoded[1] != 'P' {
		t.Errorf("expected big-endian code units, got % X", encoded[:4])
	}
	if decoded, _ := DecodeUTF16BE(encoded); decoded != "Poké" {
		t.Errorf("expected Poké, got %q", decoded)
	}

	encoded, err = EncodeUTF16LE("ポリゴン", NDSNicknameSize)
	if err != nil {
		t.Fatal(err)
	}
	if decoded, _ := DecodeUTF16LE(encoded); decoded != "ポリゴン" {
		t.Errorf("expected ポリゴン, got %q", decoded)
	}

	if _, err := EncodeUTF16LE("ABCDEFGHIJKLM", NDSNicknameSize); !errors.Is(err, ErrBadText) {
		t.Errorf("expected ErrBadText for 13 code units, got %v", err)
	}
}

func TestGenerationRoundTrips(t *testing.T) {
	gen1 := &Gen1{Species: 25, Level: 50, Moves: [4]uint8{84, 98}, OTID: 0xBEEF, IVData: 0xA9E1}
	gen1.Experience = PutUint24(117360)
	decoded1, err := DecodeGen1(gen1.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if *decoded1 != *gen1 || Uint24(decoded1.Experience) != 117360 {
		t.Errorf("gen1 record changed in round trip: %+v", decoded1)
	}

	gen2 := &Gen2{Species: 201, HeldItem: 50, CaughtData: 0xC5A3, IsEgg: 1}
	decoded2, err := DecodeGen2(gen2.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if *decoded2 != *gen2 {
		t.Errorf("gen2 record changed in round trip: %+v", decoded2)
	}

	gcn := &GCN{Species: 262, Personality: 0xDEADBEEF, ShadowID: 12, Purification: -100}
	decodedGCN, err := DecodeGCN(gcn.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if *decodedGCN != *gcn {
		t.Errorf("gcn record changed in round trip: %+v", decodedGCN)
	}
}

func TestChecksummedRecords(t *testing.T) {
	gba := &GBA{Personality: 0x12345678, Species: 262, Experience: 125000}
	gba.SetIV(3, 13)
	gba.SetIV(5, 31)
	data := gba.Encode()
	if len(data) != GBASize {
		t.Fatalf("expected %d bytes, got %d", GBASize, len(data))
	}
	decoded, err := DecodeGBA(data)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.IV(3) != 13 || decoded.IV(5) != 31 || decoded.IV(0) != 0 {
		t.Errorf("unexpected IVs %d %d %d", decoded.IV(3), decoded.IV(5), decoded.IV(0))
	}
	data[gbaDataStart] ^= 0xFF
	if _, err := DecodeGBA(data); !errors.Is(err, ErrBadChecksum) {
		t.Errorf("expected ErrBadChecksum, got %v", err)
	}

	nds := &NDS{Personality: 0x12345678, Species: 387, Nature: 3}
	nds.SetIV(1, 30)
	data = nds.Encode()
	decodedNDS, err := DecodeNDS(data)
	if err != nil {
		t.Fatal(err)
	}
	if *decodedNDS != *nds || decodedNDS.IV(1) != 30 {
		t.Errorf("nds record changed in round trip: %+v", decodedNDS)
	}
	if _, err := DecodeNDS(data[:len(data)-1]); !errors.Is(err, ErrBadLength) {
		t.Errorf("expected ErrBadLength, got %v", err)
	}
}
