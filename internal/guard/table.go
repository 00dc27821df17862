package guard

// familyRow binds one definition family to the probe that suppresses it.
// The table is flat and order-independent: no row reads another row's output.
type familyRow struct {
	family Family
	probe  ProbeID
	flags  []FlagID
}

var table = [familyCount]familyRow{
	{
		family: FamilyIn,
		probe:  ProbeNetinetIn,
		flags: []FlagID{
			FlagInAddr, FlagInIPProto, FlagInPktinfo,
			FlagIPMreq, FlagSockaddrIn, FlagInClass,
		},
	},
	{
		family: FamilyIn6,
		probe:  ProbeNetinetIn,
		flags: []FlagID{
			FlagIn6Addr, FlagIn6AddrAlt, FlagSockaddrIn6, FlagIPv6Mreq,
			FlagIPProtoV6, FlagIPv6Options, FlagIn6Pktinfo, FlagIP6Mtuinfo,
		},
	},
	{
		family: FamilyTCP,
		probe:  ProbeNetinetTCP,
		flags:  []FlagID{FlagTCPHdr},
	},
	{
		family: FamilyEther,
		probe:  ProbeNetinetIfEther,
		flags:  []FlagID{FlagEthHdr},
	},
	{
		family: FamilyTime,
		probe:  ProbeTime,
		flags:  []FlagID{FlagTimespec, FlagItimerspec},
	},
	{
		family: FamilySysTime,
		probe:  ProbeSysTime,
		flags:  []FlagID{FlagTimeval, FlagItimerval, FlagTimezone},
	},
	{
		family: FamilyNetIf,
		probe:  ProbeNetIf,
		flags: []FlagID{
			FlagIfIfnamsiz, FlagIfNetDeviceFlagsLowerUpDormantEcho,
			FlagIfNetDeviceFlags, FlagIfIfmap, FlagIfIfreq, FlagIfIfconf,
		},
	},
	{
		family: FamilyXattr,
		probe:  ProbeSysXattr,
		flags:  []FlagID{FlagXattr},
	},
}

// flagOwners is derived from the table at init: flag -> owning family row.
var flagOwners [flagCount]Family

func init() {
	for _, row := range table {
		for _, f := range row.flags {
			flagOwners[f] = row.family
		}
	}
}

// FamilyOf returns the definition family a flag belongs to.
func FamilyOf(f FlagID) Family {
	if f >= flagCount {
		return familyCount
	}
	return flagOwners[f]
}

// ProbeOf returns the probe that governs a flag's family.
func ProbeOf(f FlagID) ProbeID {
	fa := FamilyOf(f)
	if fa >= familyCount {
		return probeCount
	}
	return table[fa].probe
}

// FamilyFlags returns the flags of a family in declaration order.
func FamilyFlags(fa Family) []FlagID {
	if fa >= familyCount {
		return nil
	}
	return append([]FlagID(nil), table[fa].flags...)
}
