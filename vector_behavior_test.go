package simplevector_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	simplevector "github.com/nikolaimatveev/simple-vector"
)

var _ = Describe("Vector", func() {
	var v *simplevector.Vector[int]

	BeforeEach(func() {
		v = simplevector.New[int]()
	})

	Context("when newly created", func() {
		It("should be empty", func() {
			Expect(v.Len()).To(Equal(0))
			Expect(v.IsEmpty()).To(BeTrue())
		})

		It("should have no capacity", func() {
			Expect(v.Cap()).To(Equal(0))
		})

		It("should reject checked access", func() {
			_, err := v.Get(0)
			Expect(err).To(MatchError(simplevector.ErrOutOfRange))
		})

		It("should panic on PopBack", func() {
			Expect(func() {
				v.PopBack()
			}).To(Panic())
		})
	})

	Context("when pushing elements", func() {
		BeforeEach(func() {
			v.PushBack(1)
			v.PushBack(2)
			v.PushBack(3)
		})

		It("should read back in order", func() {
			Expect(v.Len()).To(Equal(3))
			Expect(v.At(0)).To(Equal(1))
			Expect(v.At(1)).To(Equal(2))
			Expect(v.At(2)).To(Equal(3))
		})

		It("should at least double capacity on overflow", func() {
			Expect(v.Cap()).To(Equal(4))
		})

		It("should keep existing elements across growth", func() {
			for i := 4; i <= 100; i++ {
				v.PushBack(i)
			}
			for i := 0; i < 100; i++ {
				Expect(v.At(i)).To(Equal(i + 1))
			}
		})

		It("should panic on access past the logical range", func() {
			Expect(func() {
				v.At(3)
			}).To(Panic())
		})
	})

	Context("when inserting and erasing", func() {
		BeforeEach(func() {
			v.Append(1, 2, 3)
		})

		It("should shift elements back on insert", func() {
			i := v.Insert(1, 99)
			Expect(i).To(Equal(1))
			Expect(v.Slice()).To(Equal([]int{1, 99, 2, 3}))
		})

		It("should shift elements forward on erase", func() {
			i := v.Erase(1)
			Expect(i).To(Equal(1))
			Expect(v.Slice()).To(Equal([]int{1, 3}))
			Expect(v.Cap()).To(Equal(4))
		})

		It("should restore the sequence on erase then insert", func() {
			i := v.Erase(1)
			v.Insert(i, 2)
			Expect(v.Slice()).To(Equal([]int{1, 2, 3}))
		})

		It("should panic when erasing past the end", func() {
			Expect(func() {
				v.Erase(v.Len())
			}).To(Panic())
		})
	})

	Context("when clearing", func() {
		It("should drop the elements but keep the buffer", func() {
			v.Append(1, 2, 3)
			capBefore := v.Cap()

			v.Clear()

			Expect(v.Len()).To(Equal(0))
			Expect(v.Cap()).To(Equal(capBefore))
		})
	})

	Context("when constructed with a capacity hint", func() {
		BeforeEach(func() {
			v = simplevector.NewWithCapacity[int](simplevector.Reserve(8))
		})

		It("should pre-allocate without establishing elements", func() {
			Expect(v.Len()).To(Equal(0))
			Expect(v.Cap()).To(Equal(8))
		})

		It("should not reallocate until the hint is exhausted", func() {
			for i := 0; i < 8; i++ {
				v.PushBack(i)
			}
			Expect(v.Growths()).To(Equal(0))

			v.PushBack(8)
			Expect(v.Growths()).To(Equal(1))
			Expect(v.Cap()).To(Equal(16))
		})
	})

	Context("when copying and moving", func() {
		BeforeEach(func() {
			v.Append(1, 2, 3)
		})

		It("should deep-copy on Clone", func() {
			c := v.Clone()
			Expect(simplevector.Equal(c, v)).To(BeTrue())

			c.Set(0, 99)
			Expect(v.At(0)).To(Equal(1))
			Expect(simplevector.Equal(c, v)).To(BeFalse())
			Expect(c.Slice()).To(Equal([]int{99, 2, 3}))
		})

		It("should empty the source on MoveFrom", func() {
			dst := simplevector.New[int]()
			dst.MoveFrom(v)
			Expect(v.Len()).To(Equal(0))
			Expect(v.Cap()).To(Equal(0))
			Expect(dst.Slice()).To(Equal([]int{1, 2, 3}))
		})
	})
})
