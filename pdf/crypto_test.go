// seehuhn.de/go/pdfmarkup - PDF markup annotations and their appearance streams
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rc4"
	"errors"
	"testing"
)

// decrypt reverses EncryptBytes, for testing.
func decrypt(t *testing.T, sec *StandardEncryptor, ref Reference, buf []byte) []byte {
	t.Helper()
	key := sec.keyForRef(ref)
	switch sec.cipher {
	case CipherRC4:
		c, err := rc4.NewCipher(key)
		if err != nil {
			t.Fatal(err)
		}
		out := bytes.Clone(buf)
		c.XORKeyStream(out, out)
		return out
	default:
		if len(buf) < 32 || len(buf)%16 != 0 {
			t.Fatalf("invalid ciphertext length %d", len(buf))
		}
		c, err := aes.NewCipher(key)
		if err != nil {
			t.Fatal(err)
		}
		out := bytes.Clone(buf[16:])
		cipher.NewCBCDecrypter(c, buf[:16]).CryptBlocks(out, out)
		nPad := int(out[len(out)-1])
		if nPad < 1 || nPad > 16 {
			t.Fatalf("invalid padding %d", nPad)
		}
		return out[:len(out)-nPad]
	}
}

func TestEncryptRoundTrip(t *testing.T) {
	ciphers := []Cipher{CipherRC4, CipherAES128, CipherAES256}
	messages := [][]byte{
		{},
		[]byte("Line"),
		[]byte("exactly 16 bytes"),
		bytes.Repeat([]byte("0 0 m 100 0 l S\n"), 10),
	}
	for _, c := range ciphers {
		t.Run(c.String(), func(t *testing.T) {
			sec, err := NewStandardEncryptor(&EncryptOptions{
				UserPassword:  "user",
				OwnerPassword: "owner",
				Permissions:   PermPrint | PermCopy,
				Cipher:        c,
			})
			if err != nil {
				t.Fatal(err)
			}
			ref := NewReference(17, 0)
			for _, msg := range messages {
				enc, err := sec.EncryptBytes(ref, bytes.Clone(msg))
				if err != nil {
					t.Fatal(err)
				}
				if c != CipherRC4 && len(enc)%16 != 0 {
					t.Errorf("ciphertext length %d", len(enc))
				}
				out := decrypt(t, sec, ref, enc)
				if !bytes.Equal(out, msg) {
					t.Errorf("round trip failed: %q != %q", out, msg)
				}
			}
		})
	}
}

func TestKeysDifferPerObject(t *testing.T) {
	sec, err := NewStandardEncryptor(&EncryptOptions{Cipher: CipherRC4})
	if err != nil {
		t.Fatal(err)
	}
	k1 := sec.keyForRef(NewReference(1, 0))
	k2 := sec.keyForRef(NewReference(2, 0))
	if bytes.Equal(k1, k2) {
		t.Error("objects share an encryption key")
	}
}

func TestUserPasswordR4(t *testing.T) {
	sec, err := NewStandardEncryptor(&EncryptOptions{
		UserPassword: "secret",
		Cipher:       CipherAES128,
		ID:           []byte("0123456789abcdef"),
	})
	if err != nil {
		t.Fatal(err)
	}
	padded, err := padPasswd("secret")
	if err != nil {
		t.Fatal(err)
	}
	key := sec.computeFileEncryptionKey(padded)
	if !bytes.Equal(key, sec.key) {
		t.Error("file encryption key cannot be recovered from the user password")
	}
	u := sec.computeU(key)
	if !bytes.Equal(u[:16], sec.u[:16]) {
		t.Error("U does not authenticate the user password")
	}
	if !bytes.Equal(sec.ID(), []byte("0123456789abcdef")) {
		t.Error("wrong file identifier")
	}
}

func TestUserPasswordR6(t *testing.T) {
	sec, err := NewStandardEncryptor(&EncryptOptions{
		UserPassword:  "Bär",
		OwnerPassword: "owner",
		Cipher:        CipherAES256,
	})
	if err != nil {
		t.Fatal(err)
	}
	pwd, err := utf8Passwd("Bär")
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(slowHash(pwd, sec.u[32:40], nil), sec.u[:32]) {
		t.Error("U does not authenticate the user password")
	}

	c, err := aes.NewCipher(slowHash(pwd, sec.u[40:48], nil))
	if err != nil {
		t.Fatal(err)
	}
	key := make([]byte, 32)
	cipher.NewCBCDecrypter(c, make([]byte, 16)).CryptBlocks(key, sec.ue)
	if !bytes.Equal(key, sec.key) {
		t.Error("UE does not contain the file encryption key")
	}

	owner, _ := utf8Passwd("owner")
	if !bytes.Equal(slowHash(owner, sec.o[32:40], sec.u), sec.o[:32]) {
		t.Error("O does not authenticate the owner password")
	}

	c, _ = aes.NewCipher(sec.key)
	perms := make([]byte, 16)
	c.Decrypt(perms, sec.perms)
	if string(perms[9:12]) != "adb" {
		t.Errorf("invalid Perms value %x", perms)
	}
}

func TestInvalidPassword(t *testing.T) {
	_, err := NewStandardEncryptor(&EncryptOptions{
		UserPassword: "Bär",
		Cipher:       CipherRC4,
	})
	if err == nil {
		t.Error("non-ASCII password accepted for RC4")
	}
}

func TestPermissions(t *testing.T) {
	if p := stdSecPermToP(PermAll); p != 0xFFFFFFFC {
		t.Errorf("PermAll: P = %08x", p)
	}
	p := stdSecPermToP(0)
	for _, bit := range []int{3, 4, 5, 6, 9, 11, 12} {
		if p&(1<<(bit-1)) != 0 {
			t.Errorf("bit %d set without permission", bit)
		}
	}
}

func TestEncryptDict(t *testing.T) {
	cases := []struct {
		c       Cipher
		ok      Version
		tooOld  Version
		wantV   Integer
		wantCFM Name
	}{
		{CipherRC4, V1_4, V1_3, 2, ""},
		{CipherAES128, V1_6, V1_5, 4, "AESV2"},
		{CipherAES256, V2_0, V1_7, 5, "AESV3"},
	}
	for _, test := range cases {
		sec, err := NewStandardEncryptor(&EncryptOptions{Cipher: test.c})
		if err != nil {
			t.Fatal(err)
		}

		_, err = sec.AsDict(test.tooOld)
		var verErr *VersionError
		if !errors.As(err, &verErr) {
			t.Errorf("%s: expected VersionError, got %v", test.c, err)
		}

		dict, err := sec.AsDict(test.ok)
		if err != nil {
			t.Fatal(err)
		}
		if dict["V"] != test.wantV || dict["Filter"] != Name("Standard") {
			t.Errorf("%s: wrong dictionary %v", test.c, dict)
		}
		if test.wantCFM != "" {
			cf := dict["CF"].(Dict)["StdCF"].(Dict)
			if cf["CFM"] != test.wantCFM {
				t.Errorf("%s: wrong CFM %v", test.c, cf["CFM"])
			}
		}
	}
}
