package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeTypeRef(t *testing.T) {
	five, seven := uint(5), uint(7)

	tests := []struct {
		name     string
		sizeType SizeType
		wantRef  SizeRef
		wantOK   bool
	}{
		{name: "clothing only", sizeType: SizeType{ClothingSizeID: &five}, wantRef: ClothingSizeRef{ID: 5}, wantOK: true},
		{name: "shoes only", sizeType: SizeType{ShoeSizeID: &seven}, wantRef: ShoeSizeRef{ID: 7}, wantOK: true},
		{name: "neither", sizeType: SizeType{}, wantOK: false},
		{name: "both", sizeType: SizeType{ClothingSizeID: &five, ShoeSizeID: &seven}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := tt.sizeType.Ref()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRef, ref)
		})
	}
}

func TestSetRefReplacesPreviousReference(t *testing.T) {
	st := NewSizeType(3, ClothingSizeRef{ID: 5})
	assert.Equal(t, StatusAvailable, st.Status)
	require.NotNil(t, st.ClothingSizeID)
	assert.Nil(t, st.ShoeSizeID)

	st.SetRef(ShoeSizeRef{ID: 9})
	assert.Nil(t, st.ClothingSizeID)
	require.NotNil(t, st.ShoeSizeID)
	assert.Equal(t, uint(9), *st.ShoeSizeID)

	ref, ok := st.Ref()
	require.True(t, ok)
	assert.Equal(t, SizeKindShoes, ref.Kind())
	assert.Equal(t, uint(9), ref.RefID())

	st.SetRef(nil)
	_, ok = st.Ref()
	assert.False(t, ok)
}
