package grade

import (
	"fmt"
	"reflect"
	"testing"
)

func sequentialIDs(prefix string) IDGenerator {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func TestApplyPaste(t *testing.T) {
	baseline := func() []Course {
		return []Course{
			{ID: "c1", Name: "Algebra", Credits: "4", Grade: "9"},
			{ID: "c2", Name: "Physics", Credits: "3", Grade: "8"},
			{ID: "c3", Name: "Drawing", Credits: "2", Grade: "10"},
		}
	}

	tests := []struct {
		name     string
		targetID string
		field    Field
		raw      string
		want     []Course
	}{
		{
			name: "single value into credits", targetID: "c2", field: FieldCredits, raw: "5",
			want: []Course{
				{ID: "c1", Name: "Algebra", Credits: "4", Grade: "9"},
				{ID: "c2", Name: "Physics", Credits: "5", Grade: "8"},
				{ID: "c3", Name: "Drawing", Credits: "2", Grade: "10"},
			},
		},
		{
			name: "single value is written verbatim", targetID: "c1", field: FieldGrade, raw: "9.5 ",
			want: []Course{
				{ID: "c1", Name: "Algebra", Credits: "4", Grade: "9.5 "},
				{ID: "c2", Name: "Physics", Credits: "3", Grade: "8"},
				{ID: "c3", Name: "Drawing", Credits: "2", Grade: "10"},
			},
		},
		{
			name: "single 3-column line into name fans out", targetID: "c1", field: FieldName, raw: "Chemistry\t3\t7",
			want: []Course{
				{ID: "c1", Name: "Chemistry", Credits: "3", Grade: "7"},
				{ID: "c2", Name: "Physics", Credits: "3", Grade: "8"},
				{ID: "c3", Name: "Drawing", Credits: "2", Grade: "10"},
			},
		},
		{
			name: "single 3-column line into grade fans out too", targetID: "c2", field: FieldGrade, raw: "Chemistry\t\t3\t7",
			want: []Course{
				{ID: "c1", Name: "Algebra", Credits: "4", Grade: "9"},
				{ID: "c2", Name: "Chemistry", Credits: "3", Grade: "7"},
				{ID: "c3", Name: "Drawing", Credits: "2", Grade: "10"},
			},
		},
		{
			name: "two-column line stays in the target field", targetID: "c1", field: FieldName, raw: "Chemistry\t3",
			want: []Course{
				{ID: "c1", Name: "Chemistry\t3", Credits: "4", Grade: "9"},
				{ID: "c2", Name: "Physics", Credits: "3", Grade: "8"},
				{ID: "c3", Name: "Drawing", Credits: "2", Grade: "10"},
			},
		},
		{
			name: "multi-row partial columns hit only the target field", targetID: "c2", field: FieldCredits, raw: "5\n6",
			want: []Course{
				{ID: "c1", Name: "Algebra", Credits: "4", Grade: "9"},
				{ID: "c2", Name: "Physics", Credits: "5", Grade: "8"},
				{ID: "c3", Name: "Drawing", Credits: "6", Grade: "10"},
			},
		},
		{
			name: "multi-row full columns overwrite positionally", targetID: "c1", field: FieldCredits,
			raw: "Chemistry\t3\t7\nBiology\t2\t8",
			want: []Course{
				{ID: "c1", Name: "Chemistry", Credits: "3", Grade: "7"},
				{ID: "c2", Name: "Biology", Credits: "2", Grade: "8"},
				{ID: "c3", Name: "Drawing", Credits: "2", Grade: "10"},
			},
		},
		{
			name: "mixed rows", targetID: "c2", field: FieldGrade, raw: "Chemistry\t3\t7\n6",
			want: []Course{
				{ID: "c1", Name: "Algebra", Credits: "4", Grade: "9"},
				{ID: "c2", Name: "Chemistry", Credits: "3", Grade: "7"},
				{ID: "c3", Name: "Drawing", Credits: "2", Grade: "6"},
			},
		},
		{
			name: "overflow appends full records", targetID: "c3", field: FieldName,
			raw: "Drama\t1\t10\nMusic\t1\t9",
			want: []Course{
				{ID: "c1", Name: "Algebra", Credits: "4", Grade: "9"},
				{ID: "c2", Name: "Physics", Credits: "3", Grade: "8"},
				{ID: "c3", Name: "Drama", Credits: "1", Grade: "10"},
				{ID: "new1", Name: "Music", Credits: "1", Grade: "9"},
			},
		},
		{
			name: "overflow with a single value fills only the target field", targetID: "c3", field: FieldCredits,
			raw: "2\n3\n4",
			want: []Course{
				{ID: "c1", Name: "Algebra", Credits: "4", Grade: "9"},
				{ID: "c2", Name: "Physics", Credits: "3", Grade: "8"},
				{ID: "c3", Name: "Drawing", Credits: "2", Grade: "10"},
				{ID: "new1", Credits: "3"},
				{ID: "new2", Credits: "4"},
			},
		},
		{
			name: "blank lines are discarded", targetID: "c2", field: FieldCredits, raw: "\n  \n5\n\n6\n",
			want: []Course{
				{ID: "c1", Name: "Algebra", Credits: "4", Grade: "9"},
				{ID: "c2", Name: "Physics", Credits: "5", Grade: "8"},
				{ID: "c3", Name: "Drawing", Credits: "6", Grade: "10"},
			},
		},
		{
			name: "windows line endings", targetID: "c2", field: FieldGrade, raw: "7\r\n8",
			want: []Course{
				{ID: "c1", Name: "Algebra", Credits: "4", Grade: "9"},
				{ID: "c2", Name: "Physics", Credits: "3", Grade: "7"},
				{ID: "c3", Name: "Drawing", Credits: "2", Grade: "8"},
			},
		},
		{name: "missing target is a no-op", targetID: "nope", field: FieldCredits, raw: "5", want: baseline()},
		{name: "whitespace-only paste is a no-op", targetID: "c1", field: FieldCredits, raw: " \n\t\n", want: baseline()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := baseline()
			got := applyPaste(orig, tt.targetID, tt.field, tt.raw, sequentialIDs("new"))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("applyPaste() = %+v; want %+v", got, tt.want)
			}
			if !reflect.DeepEqual(orig, baseline()) {
				t.Errorf("applyPaste() mutated its input: %+v", orig)
			}
		})
	}
}
