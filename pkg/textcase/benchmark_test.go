package textcase

import "testing"

func BenchmarkConverter_SlugCached(b *testing.B) {
	c := New(DefaultConfig())
	c.Slug("tést wîth spécîål chåråctérs")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Slug("tést wîth spécîål chåråctérs")
	}
}

func BenchmarkConverter_SlugUncached(b *testing.B) {
	c := New(Config{CacheDisabled: true})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Slug("tést wîth spécîål chåråctérs")
	}
}

func BenchmarkConverter_ConvertAllParallel(b *testing.B) {
	c := New(DefaultConfig())

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = c.ConvertAll("TestingCamelCaps")
		}
	})
}
