package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/nftexplorer/base/ctx"
)

func Test_dataUriReaderRepo_Get(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    []byte
		wantErr bool
	}{
		{
			name:    "invalid schema",
			uri:     "https://url",
			wantErr: true,
		},
		{
			name:    "empty data part",
			uri:     "data:application/json;base64,",
			wantErr: true,
		},
		{
			name:    "no data part",
			uri:     "data:application/json;base64",
			wantErr: true,
		},
		{
			name: "plain text",
			uri:  `data:application/json;utf8,{"description":"on chain","image":"ipfs://QmImage"}`,
			want: []byte(`{"description":"on chain","image":"ipfs://QmImage"}`),
		},
		{
			name: "base64",
			uri:  "data:application/json;base64,eyJkZXNjcmlwdGlvbiI6Im9uIGNoYWluIn0=",
			want: []byte(`{"description":"on chain"}`),
		},
		{
			name:    "bad base64",
			uri:     "data:application/json;base64,%%%",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewDataUriReaderRepo()
			got, err := r.Get(bCtx.Background(), tt.uri)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
