// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	map0Igxyk6440aDgpJFekP1eAΞΞ   = ord.NewMapSer[string, int](ord.String, varint.Int)
	slicewbcΣ2qcfNV217Zd893Fa1gΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var IntentLevelMUS = intentLevelMUS{}

type intentLevelMUS struct{}

func (s intentLevelMUS) Marshal(v IntentLevel, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s intentLevelMUS) Unmarshal(bs []byte) (v IntentLevel, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = IntentLevel(tmp)
	return
}

func (s intentLevelMUS) Size(v IntentLevel) (size int) {
	return ord.String.Size(string(v))
}

func (s intentLevelMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var IntentAnalysisMUS = intentAnalysisMUS{}

type intentAnalysisMUS struct{}

func (s intentAnalysisMUS) Marshal(v IntentAnalysis, bs []byte) (n int) {
	n = ord.Bool.Marshal(v.BuyingIntent, bs)
	n += varint.Int.Marshal(v.IntentScore, bs[n:])
	n += IntentLevelMUS.Marshal(v.IntentLevel, bs[n:])
	n += map0Igxyk6440aDgpJFekP1eAΞΞ.Marshal(v.BucketDistribution, bs[n:])
	n += ord.String.Marshal(v.DominantBucket, bs[n:])
	n += varint.Float64.Marshal(v.MaxSimilarity, bs[n:])
	return n + ord.String.Marshal(v.Reason, bs[n:])
}

func (s intentAnalysisMUS) Unmarshal(bs []byte) (v IntentAnalysis, n int, err error) {
	v.BuyingIntent, n, err = ord.Bool.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.IntentScore, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.IntentLevel, n1, err = IntentLevelMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.BucketDistribution, n1, err = map0Igxyk6440aDgpJFekP1eAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DominantBucket, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.MaxSimilarity, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Reason, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s intentAnalysisMUS) Size(v IntentAnalysis) (size int) {
	size = ord.Bool.Size(v.BuyingIntent)
	size += varint.Int.Size(v.IntentScore)
	size += IntentLevelMUS.Size(v.IntentLevel)
	size += map0Igxyk6440aDgpJFekP1eAΞΞ.Size(v.BucketDistribution)
	size += ord.String.Size(v.DominantBucket)
	size += varint.Float64.Size(v.MaxSimilarity)
	return size + ord.String.Size(v.Reason)
}

func (s intentAnalysisMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.Bool.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IntentLevelMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = map0Igxyk6440aDgpJFekP1eAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var LeadMUS = leadMUS{}

type leadMUS struct{}

func (s leadMUS) Marshal(v Lead, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Link, bs[n:])
	n += ord.String.Marshal(v.Snippet, bs[n:])
	n += ord.String.Marshal(v.Domain, bs[n:])
	n += IntentAnalysisMUS.Marshal(v.Intent, bs[n:])
	n += varint.Float64.Marshal(v.ImreScore, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
}

func (s leadMUS) Unmarshal(bs []byte) (v Lead, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Link, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Snippet, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Domain, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Intent, n1, err = IntentAnalysisMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ImreScore, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s leadMUS) Size(v Lead) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Link)
	size += ord.String.Size(v.Snippet)
	size += ord.String.Size(v.Domain)
	size += IntentAnalysisMUS.Size(v.Intent)
	size += varint.Float64.Size(v.ImreScore)
	return size + raw.TimeUnixMicro.Size(v.InsertedAt)
}

func (s leadMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IntentAnalysisMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var IntentExampleMUS = intentExampleMUS{}

type intentExampleMUS struct{}

func (s intentExampleMUS) Marshal(v IntentExample, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Bucket, bs[n:])
	n += ord.String.Marshal(v.Text, bs[n:])
	n += varint.Float64.Marshal(v.IntentWeight, bs[n:])
	n += slicewbcΣ2qcfNV217Zd893Fa1gΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s intentExampleMUS) Unmarshal(bs []byte) (v IntentExample, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Bucket, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.IntentWeight, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = slicewbcΣ2qcfNV217Zd893Fa1gΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s intentExampleMUS) Size(v IntentExample) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Bucket)
	size += ord.String.Size(v.Text)
	size += varint.Float64.Size(v.IntentWeight)
	size += slicewbcΣ2qcfNV217Zd893Fa1gΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s intentExampleMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicewbcΣ2qcfNV217Zd893Fa1gΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
