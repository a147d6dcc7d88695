package grade

import "testing"

func course(name, credits, grd string) Course {
	return Course{ID: name, Name: name, Credits: credits, Grade: grd}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name    string
		courses []Course
		want    float64
	}{
		{name: "empty list", courses: nil, want: 0},
		{name: "zero credits", courses: []Course{course("A", "0", "9"), course("B", "0", "7")}, want: 0},
		{name: "blank fields", courses: []Course{course("A", "", ""), course("B", "", "8")}, want: 0},
		{name: "non-numeric text", courses: []Course{course("A", "abc", "9"), course("B", "three", "xyz")}, want: 0},
		{name: "single course", courses: []Course{course("A", "4", "8")}, want: 8},
		{name: "weighted pair", courses: []Course{course("A", "3", "9"), course("B", "2", "7")}, want: 8.2},
		{name: "rounded to 2dp", courses: []Course{course("A", "3", "10"), course("B", "3", "9"), course("C", "3", "8")}, want: 9},
		{name: "repeating ratio", courses: []Course{course("A", "3", "10"), course("B", "4", "8"), course("C", "2", "7")}, want: 8.44},
		{name: "malformed contributes zero weight", courses: []Course{course("A", "4", "8"), course("B", "n/a", "10")}, want: 8},
		{name: "partial input counts as zero grade", courses: []Course{course("A", "4", "8"), course("B", "2", "")}, want: 5.33},
		{name: "negative values compute normally", courses: []Course{course("A", "4", "-2"), course("B", "4", "10")}, want: 4},
		{name: "decimal credits", courses: []Course{course("A", "1.5", "10"), course("B", "4.5", "6")}, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Average(tt.courses); got != tt.want {
				t.Errorf("Average() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestCumulativeAverage(t *testing.T) {
	// two semesters with unequal total credits: pooled CGPA must differ
	// from the mean of the two SGPAs
	sem1 := Semester{ID: "1", Courses: []Course{course("A", "10", "9")}}
	sem2 := Semester{ID: "2", Courses: []Course{course("B", "2", "6")}}
	book := Book{sem1, sem2}

	sgpa1, sgpa2 := Average(sem1.Courses), Average(sem2.Courses)
	if sgpa1 != 9 || sgpa2 != 6 {
		t.Fatalf("SGPAs = %v, %v; want 9, 6", sgpa1, sgpa2)
	}

	// pooled: (10*9 + 2*6) / 12 = 8.5 ; mean of SGPAs would be 7.5
	if got := CumulativeAverage(book); got != 8.5 {
		t.Errorf("CumulativeAverage() = %v; want 8.5 (pooled, not mean of SGPAs)", got)
	}
	if meanOfSGPAs := round2((sgpa1 + sgpa2) / 2); meanOfSGPAs == CumulativeAverage(book) {
		t.Errorf("pooled CGPA must differ from mean of SGPAs; both = %v", meanOfSGPAs)
	}

	tests := []struct {
		name    string
		sems    []Semester
		through []int
		want    float64
	}{
		{name: "empty book", sems: nil, want: 0},
		{name: "through first only", sems: book, through: []int{0}, want: 9},
		{name: "through second equals whole book", sems: book, through: []int{1}, want: 8.5},
		{name: "through past the end clamps", sems: book, through: []int{7}, want: 8.5},
		{name: "negative prefix is empty", sems: book, through: []int{-1}, want: 0},
		{name: "zero-credit semester contributes nothing", sems: Book{sem1, {ID: "2", Courses: []Course{course("X", "0", "3")}}}, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CumulativeAverage(tt.sems, tt.through...); got != tt.want {
				t.Errorf("CumulativeAverage() = %v; want %v", got, tt.want)
			}
		})
	}
}
