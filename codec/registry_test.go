package codec_test

import (
	"sync"
	"testing"

	"github.com/cocosip/go-interp-codec/codec"
	_ "github.com/cocosip/go-interp-codec/ic/lossless"
)

type fakeCodec struct {
	name, uid string
}

func (f *fakeCodec) Encode(params codec.EncodeParams) ([]byte, error) { return params.PixelData, nil }
func (f *fakeCodec) Decode(data []byte) (*codec.DecodeResult, error) {
	return &codec.DecodeResult{PixelData: data}, nil
}
func (f *fakeCodec) UID() string  { return f.uid }
func (f *fakeCodec) Name() string { return f.name }

func TestCodecRegistry(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantFound bool
		wantUID   string
		wantName  string
	}{
		{
			name:      "Get ic-lossless by UID",
			key:       "application/x-ic-lossless",
			wantFound: true,
			wantUID:   "application/x-ic-lossless",
			wantName:  "ic-lossless",
		},
		{
			name:      "Get ic-lossless by name",
			key:       "ic-lossless",
			wantFound: true,
			wantUID:   "application/x-ic-lossless",
			wantName:  "ic-lossless",
		},
		{
			name:      "Get non-existent codec",
			key:       "non-existent",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := codec.Get(tt.key)

			if tt.wantFound {
				if err != nil {
					t.Errorf("Get(%q) unexpected error: %v", tt.key, err)
					return
				}
				if c.UID() != tt.wantUID {
					t.Errorf("Get(%q).UID() = %q, want %q", tt.key, c.UID(), tt.wantUID)
				}
				if c.Name() != tt.wantName {
					t.Errorf("Get(%q).Name() = %q, want %q", tt.key, c.Name(), tt.wantName)
				}
			} else if err != codec.ErrCodecNotFound {
				t.Errorf("Get(%q) error = %v, want %v", tt.key, err, codec.ErrCodecNotFound)
			}
		})
	}
}

func TestListCodecs(t *testing.T) {
	found := false
	for _, c := range codec.List() {
		if c.Name() == "ic-lossless" {
			found = true
		}
	}
	if !found {
		t.Error("List() did not include ic-lossless")
	}
}

func TestRegistryDeduplicatesAndSorts(t *testing.T) {
	r := codec.NewRegistry()
	b := &fakeCodec{name: "b", uid: "uid-b"}
	a := &fakeCodec{name: "a", uid: "uid-a"}
	r.Register(b)
	r.Register(a)
	r.Register(a)

	list := r.List()
	if len(list) != 2 {
		t.Fatalf("List() returned %d codecs, want 2", len(list))
	}
	if list[0].Name() != "a" || list[1].Name() != "b" {
		t.Errorf("List() order = %s, %s", list[0].Name(), list[1].Name())
	}

	for _, key := range []string{"a", "uid-a"} {
		got, err := r.Get(key)
		if err != nil || got != a {
			t.Errorf("Get(%q) = %v, %v", key, got, err)
		}
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := codec.NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := &fakeCodec{name: string(rune('a' + i)), uid: string(rune('A' + i))}
			r.Register(c)
			if _, err := r.Get(c.Name()); err != nil {
				t.Errorf("Get(%q) failed: %v", c.Name(), err)
			}
			r.List()
		}(i)
	}
	wg.Wait()

	if got := len(r.List()); got != 8 {
		t.Errorf("List() returned %d codecs, want 8", got)
	}
}

func TestBaseOptionsValidate(t *testing.T) {
	tests := []struct {
		opts codec.BaseOptions
		want error
	}{
		{codec.BaseOptions{}, nil},
		{codec.BaseOptions{Quality: 100}, nil},
		{codec.BaseOptions{Quality: -1}, codec.ErrInvalidQuality},
		{codec.BaseOptions{Quality: 101}, codec.ErrInvalidQuality},
		{codec.BaseOptions{NearLossless: -1}, codec.ErrInvalidParameter},
	}
	for _, tt := range tests {
		if err := tt.opts.Validate(); err != tt.want {
			t.Errorf("%+v.Validate() = %v, want %v", tt.opts, err, tt.want)
		}
	}
}
