package yaml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	tw "github.com/treewire/treewire"
	"github.com/treewire/treewire/yaml"
)

type job struct {
	Name    string
	Retries int
	Secret  []byte
}

func jobCodec() tw.Codec[job] {
	return tw.Group3(
		func(name string, retries int, secret []byte) job {
			return job{Name: name, Retries: retries, Secret: secret}
		},
		tw.Field[string, job]("name", tw.String().NotBlank(), func(j job) string { return j.Name }),
		tw.Field[int, job]("retries", tw.Int().PositiveOrZero(), func(j job) int { return j.Retries }),
		tw.Field[[]byte, job]("secret", tw.Bytes(), func(j job) []byte { return j.Secret }),
	)
}

func TestRecordRoundTrip(t *testing.T) {
	in := job{Name: "sync", Retries: 3, Secret: []byte("s3cr3t")}

	data, err := yaml.Marshal(jobCodec(), in)
	require.NoError(t, err)
	require.Contains(t, string(data), "name: sync")
	require.Contains(t, string(data), "retries: 3")

	out, err := yaml.Unmarshal(jobCodec(), data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestDecodeHandwrittenDocument(t *testing.T) {
	doc := []byte("name: sync\nretries: 2\nsecret: !!binary czNjcjN0\n")
	out, err := yaml.Unmarshal(jobCodec(), doc)
	require.NoError(t, err)
	require.Equal(t, job{Name: "sync", Retries: 2, Secret: []byte("s3cr3t")}, out)
}

func TestNullScalar(t *testing.T) {
	c := tw.Nullable[string](tw.String())

	data, err := yaml.Marshal(c, nil)
	require.NoError(t, err)
	require.Equal(t, "null\n", string(data))

	out, err := yaml.Unmarshal(c, []byte("null\n"))
	require.NoError(t, err)
	require.Nil(t, out)

	out, err = yaml.Unmarshal(c, []byte("~\n"))
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestSequenceRoundTrip(t *testing.T) {
	c := tw.List[string](tw.String())
	data, err := yaml.Marshal(c, []string{"a", "b"})
	require.NoError(t, err)

	out, err := yaml.Unmarshal(c, data)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, out)
}

func TestTypedScalarsRejectMismatches(t *testing.T) {
	_, err := yaml.Unmarshal(tw.Int(), []byte("not a number\n"))
	require.Error(t, err)

	_, err = yaml.Unmarshal(tw.Bool(), []byte("42\n"))
	require.Error(t, err)
}

func TestDecodeErrorsSurface(t *testing.T) {
	_, err := yaml.Unmarshal(jobCodec(), []byte("name: sync\nretries: -1\nsecret: !!binary czNjcjN0\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "retries:")

	_, err = yaml.Unmarshal(jobCodec(), []byte("[unclosed"))
	require.Error(t, err)
}

func TestMappingKeyReplacement(t *testing.T) {
	p := yaml.Provider()
	obj := p.NewObject()

	r := p.Set(obj, "a", p.FromInt(1))
	require.True(t, r.IsOk())
	r = p.Set(r.Value(), "a", p.FromInt(2))
	require.True(t, r.IsOk())

	keys := p.Keys(r.Value())
	require.True(t, keys.IsOk())
	require.Equal(t, []string{"a"}, keys.Value())

	child := p.Get(r.Value(), "a")
	require.True(t, child.IsOk())
	got := p.AsInt(child.Value())
	require.True(t, got.IsOk())
	require.EqualValues(t, 2, got.Value())
}
