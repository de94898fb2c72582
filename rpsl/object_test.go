package rpsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roleObject = "role:           ACME Company\n" +
	"address:        Packet Street 6\n" +
	"address:        128 Series of Tubes\n" +
	"address:        Internet\n" +
	"email:          rpsl-parser@github.com\n" +
	"nic-hdl:        RPSL1-RIPE\n" +
	"source:         RIPE\n" +
	"\n"

func TestParseObject(t *testing.T) {
	obj, err := ParseObject(roleObject)
	require.NoError(t, err)
	assert.Equal(t, 7, obj.Len())

	role := obj.Get("role")
	require.Len(t, role, 1)
	assert.True(t, role[0].EqualString("ACME Company"))

	addresses := obj.Get("address")
	require.Len(t, addresses, 3)
	assert.True(t, addresses[0].EqualString("Packet Street 6"))
	assert.True(t, addresses[2].EqualString("Internet"))

	assert.Empty(t, obj.Get("mnt-by"))
}

func TestParseObjectLeadingNewlines(t *testing.T) {
	obj, err := ParseObject("\n\nrole:           ACME Company\n\n")
	require.NoError(t, err)
	assert.Equal(t, 1, obj.Len())
}

func TestParseObjectWithoutTrailingBlankLine(t *testing.T) {
	obj, err := ParseObject("role:           ACME Company\n")
	require.NoError(t, err)
	assert.Equal(t, 1, obj.Len())
}

func TestParseObjectMultiLineAttribute(t *testing.T) {
	src := "remarks:        I have lots\n" +
		"                \n" +
		"                to say.\n" +
		"\n"
	obj, err := ParseObject(src)
	require.NoError(t, err)
	require.Equal(t, 1, obj.Len())

	remarks := obj.Get("remarks")
	require.Len(t, remarks, 1)
	assert.Equal(t, MultiLine, remarks[0].Kind())
	assert.Equal(t, 3, remarks[0].Len())
	assert.Equal(t, []string{"I have lots", "to say."}, remarks[0].WithContent())
}

func TestParseObjectEmptyInput(t *testing.T) {
	for _, src := range []string{"", "\n", "\n\n"} {
		_, err := ParseObject(src)
		require.Error(t, err, "input: %q", src)
		assert.IsType(t, &SyntaxError{}, err, "input: %q", src)
	}
}

func TestParseObjectTrailingContent(t *testing.T) {
	_, err := ParseObject("role:           ACME Company\n\nsource:         RIPE\n")
	require.Error(t, err)
	assert.IsType(t, &SyntaxError{}, err)
}

func TestObjectString(t *testing.T) {
	obj, err := ParseObject(roleObject)
	require.NoError(t, err)
	assert.Equal(t, roleObject, obj.String())
}

func TestParseWhoisResponse(t *testing.T) {
	src := "% Note: this output has been filtered.\n" +
		"%       To receive output for a database update, use the \"-B\" flag.\n" +
		"\n" +
		"% Information related to 'AS32934's\n" +
		"\n" +
		"aut-num:        AS32934\n" +
		"as-name:        FACEBOOK\n" +
		"remarks:        Locations\n" +
		"                LA1 - CoreSite One Wilshire\n" +
		"                NY1 - Equinix New York, Newark\n" +
		"source:         RIPE\n" +
		"\n" +
		roleObject +
		"% This query was served by the RIPE Database Query Service version 1.106.1 (BUSA)\n" +
		"\n"

	objects, err := ParseWhoisResponse(src)
	require.NoError(t, err)
	require.Len(t, objects, 2)

	autNum := objects[0]
	assert.Equal(t, 4, autNum.Len())
	asName := autNum.Get("as-name")
	require.Len(t, asName, 1)
	assert.True(t, asName[0].EqualString("FACEBOOK"))

	remarks := autNum.Get("remarks")
	require.Len(t, remarks, 1)
	assert.True(t, remarks[0].EqualLines([]string{
		"Locations",
		"LA1 - CoreSite One Wilshire",
		"NY1 - Equinix New York, Newark",
	}))

	role := objects[1]
	assert.Equal(t, 7, role.Len())
}

func TestParseWhoisResponseWithoutTrailingNewline(t *testing.T) {
	objects, err := ParseWhoisResponse("role:           ACME Company\n")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, 1, objects[0].Len())
}

func TestParseWhoisResponseEmpty(t *testing.T) {
	objects, err := ParseWhoisResponse("")
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestParseWhoisResponseMalformedAttribute(t *testing.T) {
	_, err := ParseWhoisResponse("aut-num:        AS32934\nbad line without colon\n")
	require.Error(t, err)
	assert.IsType(t, &SyntaxError{}, err)
}

func TestNewObjectCopiesAttributes(t *testing.T) {
	name, err := NewName("source")
	require.NoError(t, err)
	value, err := NewValue("RIPE")
	require.NoError(t, err)

	attrs := []Attribute{NewAttribute(name, value)}
	obj := NewObject(attrs)
	attrs[0] = Attribute{}
	assert.Equal(t, "source", obj.Attributes()[0].Name.String())
}
