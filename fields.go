// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tifftags

var (
	fieldsTIFF = map[uint16]Category{
		0xfe: "NewSubfileType", 0xff: "SubfileType", 0x100: "ImageWidth", 0x101: "ImageLength", 0x102: "BitsPerSample",
		0x103: "Compression", 0x106: "PhotometricInterpretation", 0x107: "Threshholding", 0x108: "CellWidth", 0x109: "CellLength",
		0x10a: "FillOrder", 0x10d: "DocumentName", 0x10e: "ImageDescription", 0x10f: "Make", 0x110: "Model",
		0x111: "StripOffsets", 0x112: "Orientation", 0x115: "SamplesPerPixel", 0x116: "RowsPerStrip", 0x117: "StripByteCounts",
		0x118: "MinSampleValue", 0x119: "MaxSampleValue", 0x11a: "XResolution", 0x11b: "YResolution", 0x11c: "PlanarConfiguration",
		0x11d: "PageName", 0x11e: "XPosition", 0x11f: "YPosition", 0x120: "FreeOffsets", 0x121: "FreeByteCounts",
		0x122: "GrayResponseUnit", 0x123: "GrayResponseCurve", 0x124: "T4Options", 0x125: "T6Options", 0x128: "ResolutionUnit",
		0x129: "PageNumber", 0x12d: "TransferFunction", 0x131: "Software", 0x132: "DateTime", 0x13b: "Artist",
		0x13c: "HostComputer", 0x13d: "Predictor", 0x13e: "WhitePoint", 0x13f: "PrimaryChromaticities", 0x140: "ColorMap",
		0x141: "HalftoneHints", 0x142: "TileWidth", 0x143: "TileLength", 0x144: "TileOffsets", 0x145: "TileByteCounts",
		0x14a: "SubIFDs", 0x14c: "InkSet", 0x14d: "InkNames", 0x14e: "NumberOfInks", 0x150: "DotRange",
		0x151: "TargetPrinter", 0x152: "ExtraSamples", 0x153: "SampleFormat", 0x154: "SMinSampleValue", 0x155: "SMaxSampleValue",
		0x156: "TransferRange", 0x15b: "JPEGTables", 0x200: "JPEGProc", 0x201: "JPEGInterchangeFormat", 0x202: "JPEGInterchangeFormatLength",
		0x211: "YCbCrCoefficients", 0x212: "YCbCrSubSampling", 0x213: "YCbCrPositioning", 0x214: "ReferenceBlackWhite", 0x2bc: "XMP",
		0x8298: "Copyright", 0x83bb: "IPTC", 0x8649: "Photoshop", 0x8773: "ICCProfile",
	}

	fieldsPointers = map[uint16]Category{
		0x8769: "ExifIFD", 0x8825: "GPSInfoIFD", 0xa005: "InteroperabilityIFD",
	}

	fieldsGeo = map[uint16]Category{
		0x830e: "ModelPixelScaleTag", 0x8480: "IntergraphMatrixTag", 0x8482: "ModelTiepointTag",
		0x85d8: CategoryModelTransformation, 0x87af: CategoryGeoKeyDirectory, 0x87b0: CategoryGeoDoubleParams,
		0x87b1: CategoryGeoASCIIParams,
	}

	fieldsGDAL = map[uint16]Category{
		0xa480: "GDAL_METADATA", 0xa481: "GDAL_NODATA",
	}

	fieldsAll = map[uint16]Category{}
)

func init() {
	for _, m := range []map[uint16]Category{fieldsTIFF, fieldsPointers, fieldsGeo, fieldsGDAL} {
		for k, v := range m {
			fieldsAll[k] = v
		}
	}
}
